package endpoints

import (
	"net/http"
	"strings"
	"testing"

	"github.com/folioboard/folioboard/pkg/server/store"
)

func TestProjectsEndpoints(t *testing.T) {
	s := NewTestServer(t)
	author, authorToken := CreateTestUser(t, s, "author", "user")
	_, otherToken := CreateTestUser(t, s, "other", "user")

	t.Run("create requires authentication", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/projects", "", map[string]string{"title": "Nope"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", w.Code)
		}
	})

	t.Run("create project derives slug from title", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/projects", authorToken, map[string]string{
			"title":       "My Design System",
			"description": "tokens and components",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var result struct {
			ID   string `json:"ID"`
			Slug string `json:"Slug"`
		}
		decodeBody(t, w, &result)
		if !strings.HasPrefix(result.Slug, "my-design-system-") {
			t.Errorf("unexpected slug %q", result.Slug)
		}
	})

	t.Run("fetching a project counts views", func(t *testing.T) {
		project := CreateTestProject(t, s, author.ID, "Viewed")

		for i := 0; i < 3; i++ {
			w := doJSON(t, s, "GET", "/projects/"+project.ID, "", nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
		}

		record, err := s.ProjectsStore.ProjectRecord(project.ID)
		if err != nil {
			t.Fatalf("failed to load project: %v", err)
		}
		if record.Views != 3 {
			t.Errorf("expected 3 views, got %d", record.Views)
		}
	})

	t.Run("update by non-author is forbidden", func(t *testing.T) {
		project := CreateTestProject(t, s, author.ID, "Mine")

		w := doJSON(t, s, "PATCH", "/projects/"+project.ID, otherToken, map[string]string{
			"title": "Stolen",
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("title change regenerates the slug", func(t *testing.T) {
		project := CreateTestProject(t, s, author.ID, "Before")

		w := doJSON(t, s, "PATCH", "/projects/"+project.ID, authorToken, map[string]string{
			"title": "After Rename",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var result struct {
			Slug string `json:"Slug"`
		}
		decodeBody(t, w, &result)
		if !strings.HasPrefix(result.Slug, "after-rename-") {
			t.Errorf("expected regenerated slug, got %q", result.Slug)
		}
	})

	t.Run("like toggles on and off", func(t *testing.T) {
		project := CreateTestProject(t, s, author.ID, "Likeable")

		w := doJSON(t, s, "POST", "/projects/"+project.ID+"/like", otherToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var result struct {
			Liked     bool  `json:"liked"`
			LikeCount int64 `json:"likeCount"`
		}
		decodeBody(t, w, &result)
		if !result.Liked || result.LikeCount != 1 {
			t.Errorf("expected liked with count 1, got %+v", result)
		}

		w = doJSON(t, s, "POST", "/projects/"+project.ID+"/like", otherToken, nil)
		decodeBody(t, w, &result)
		if result.Liked || result.LikeCount != 0 {
			t.Errorf("expected unliked with count 0, got %+v", result)
		}
	})

	t.Run("delete removes likes and comments with the project", func(t *testing.T) {
		project := CreateTestProject(t, s, author.ID, "Doomed")

		w := doJSON(t, s, "POST", "/projects/"+project.ID+"/like", otherToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("failed to like: %d", w.Code)
		}
		w = doJSON(t, s, "POST", "/projects/"+project.ID+"/comments", otherToken, map[string]string{
			"body": "nice work",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("failed to comment: %d", w.Code)
		}

		w = doJSON(t, s, "DELETE", "/projects/"+project.ID, authorToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		if _, err := s.ProjectsStore.ProjectRecord(project.ID); err != store.ErrProjectNotFound {
			t.Errorf("expected project gone, got %v", err)
		}

		var likeCount, commentCount int64
		s.DB.Table("project_likes").Where("project_id = ?", project.ID).Count(&likeCount)
		s.DB.Table("comments").Where("parent_id = ?", project.ID).Count(&commentCount)
		if likeCount != 0 || commentCount != 0 {
			t.Errorf("expected cascade delete, got %d likes and %d comments", likeCount, commentCount)
		}
	})

	t.Run("missing project is a 404", func(t *testing.T) {
		w := doJSON(t, s, "GET", "/projects/does-not-exist", "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}
