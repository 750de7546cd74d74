package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/folioboard/folioboard/pkg/db"
	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server"
	"github.com/folioboard/folioboard/pkg/session"
	"github.com/folioboard/folioboard/pkg/utils"
)

var testSessionKey = []byte("0123456789abcdef0123456789abcdef")

// NewTestServer creates a server backed by a throwaway SQLite database with
// all endpoints registered.
func NewTestServer(t *testing.T) *server.Server {
	t.Helper()

	conn, err := db.Connect(db.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = conn.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectLike{},
		&model.Company{},
		&model.Job{},
		&model.JobApplication{},
		&model.BlogPost{},
		&model.Comment{},
		&model.Subscription{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sessions := session.NewIssuer(testSessionKey, time.Hour)
	s := server.NewServer(sessions, conn, "127.0.0.1", "0")
	RegisterEndpoints(s)
	return s
}

// CreateTestUser inserts a user with the given role and returns it together
// with a valid session token.
func CreateTestUser(t *testing.T, s *server.Server, name, role string) (*model.User, string) {
	t.Helper()

	digest, err := bcrypt.GenerateFromPassword([]byte("password-"+name), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &model.User{
		ID:             utils.NewID(),
		Name:           name,
		Email:          name + "@example.com",
		PasswordDigest: string(digest),
		Role:           role,
	}
	if err := s.UsersStore.CreateUser(user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := s.Sessions.Issue(user)
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}
	return user, token
}

// doJSON performs a request against the server's router. A non-nil body is
// JSON encoded; an empty token sends no Authorization header.
func doJSON(t *testing.T, s *server.Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded response body.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
}

// CreateTestProject inserts a project owned by the given user.
func CreateTestProject(t *testing.T, s *server.Server, authorID, title string) *model.Project {
	t.Helper()

	project := &model.Project{
		ID:       utils.NewID(),
		AuthorID: authorID,
		Title:    title,
	}
	project.Slug = title + "-" + project.ID[:8]
	if err := s.ProjectsStore.CreateProject(project); err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateTestCompany inserts a company owned by the given user.
func CreateTestCompany(t *testing.T, s *server.Server, ownerID, name string, verified bool) *model.Company {
	t.Helper()

	company := &model.Company{
		ID:       utils.NewID(),
		OwnerID:  ownerID,
		Name:     name,
		TaxID:    "tax-" + name,
		Verified: verified,
	}
	company.Slug = name + "-" + company.ID[:8]
	if err := s.CompaniesStore.CreateCompany(company); err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}
	return company
}

// CreateTestJob inserts a job under the given company.
func CreateTestJob(t *testing.T, s *server.Server, companyID, title string, active bool) *model.Job {
	t.Helper()

	job := &model.Job{
		ID:        utils.NewID(),
		CompanyID: companyID,
		Title:     title,
		Active:    active,
	}
	job.Slug = title + "-" + job.ID[:8]
	if err := s.JobsStore.CreateJob(job); err != nil {
		t.Fatalf("failed to create test job: %v", err)
	}
	return job
}

// CreateTestPost inserts a blog post.
func CreateTestPost(t *testing.T, s *server.Server, authorID, title string, published bool) *model.BlogPost {
	t.Helper()

	post := &model.BlogPost{
		ID:        utils.NewID(),
		AuthorID:  authorID,
		Title:     title,
		Content:   "# " + title + "\n\nbody text",
		Published: published,
	}
	post.Slug = title + "-" + post.ID[:8]
	if err := s.BlogStore.CreatePost(post); err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}
	return post
}
