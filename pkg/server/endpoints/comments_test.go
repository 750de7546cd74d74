package endpoints

import (
	"net/http"
	"testing"
)

func TestCommentsEndpoints(t *testing.T) {
	s := NewTestServer(t)
	author, authorToken := CreateTestUser(t, s, "creator", "user")
	_, commenterToken := CreateTestUser(t, s, "commenter", "user")
	_, adminToken := CreateTestUser(t, s, "moderator", "admin")

	project := CreateTestProject(t, s, author.ID, "Commented Work")

	t.Run("commenting requires authentication", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/projects/"+project.ID+"/comments", "", map[string]string{
			"body": "anon",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", w.Code)
		}
	})

	t.Run("comment on a project and list oldest first", func(t *testing.T) {
		for _, body := range []string{"first", "second"} {
			w := doJSON(t, s, "POST", "/projects/"+project.ID+"/comments", commenterToken, map[string]string{
				"body": body,
			})
			if w.Code != http.StatusCreated {
				t.Fatalf("comment failed: %d %s", w.Code, w.Body.String())
			}
		}

		w := doJSON(t, s, "GET", "/projects/"+project.ID+"/comments", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		var result struct {
			Comments []struct {
				Body       string `json:"Body"`
				AuthorName string `json:"authorName"`
			} `json:"comments"`
		}
		decodeBody(t, w, &result)
		if len(result.Comments) != 2 {
			t.Fatalf("expected 2 comments, got %d", len(result.Comments))
		}
		if result.Comments[0].Body != "first" {
			t.Errorf("expected oldest comment first, got %q", result.Comments[0].Body)
		}
		if result.Comments[0].AuthorName != "commenter" {
			t.Errorf("expected joined author name, got %q", result.Comments[0].AuthorName)
		}
	})

	t.Run("empty comment bodies are rejected", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/projects/"+project.ID+"/comments", commenterToken, map[string]string{
			"body": "",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("commenting on a missing parent is a 404", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/projects/nonexistent/comments", commenterToken, map[string]string{
			"body": "lost",
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("only the author or an admin deletes a comment", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/projects/"+project.ID+"/comments", commenterToken, map[string]string{
			"body": "to be moderated",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("comment failed: %d", w.Code)
		}
		var created struct {
			ID string `json:"ID"`
		}
		decodeBody(t, w, &created)

		w = doJSON(t, s, "DELETE", "/projects/"+project.ID+"/comments/"+created.ID, authorToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403 for the project author, got %d", w.Code)
		}

		w = doJSON(t, s, "DELETE", "/blog/"+project.ID+"/comments/"+created.ID, adminToken, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404 under the wrong parent, got %d", w.Code)
		}

		w = doJSON(t, s, "DELETE", "/projects/"+project.ID+"/comments/"+created.ID, adminToken, nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected status 200 for admin, got %d: %s", w.Code, w.Body.String())
		}
	})
}
