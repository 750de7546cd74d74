package endpoints

import (
	"net/http"
	"testing"
)

func TestApplicationsEndpoints(t *testing.T) {
	s := NewTestServer(t)
	owner, ownerToken := CreateTestUser(t, s, "hirer", "user")
	_, applicantToken := CreateTestUser(t, s, "applicant", "user")
	_, strangerToken := CreateTestUser(t, s, "stranger", "user")

	company := CreateTestCompany(t, s, owner.ID, "hiring-co", true)
	job := CreateTestJob(t, s, company.ID, "Art Director", true)

	apply := func(t *testing.T) string {
		t.Helper()
		w := doJSON(t, s, "POST", "/jobs/"+job.ID+"/apply", applicantToken, map[string]string{
			"resumeUrl": "https://example.com/cv.pdf",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("apply failed: %d %s", w.Code, w.Body.String())
		}
		var result struct {
			ID string `json:"ID"`
		}
		decodeBody(t, w, &result)
		return result.ID
	}

	withdraw := func(appID string) {
		doJSON(t, s, "DELETE", "/applications/"+appID, applicantToken, nil)
	}

	t.Run("applicant lists their own applications", func(t *testing.T) {
		appID := apply(t)
		defer withdraw(appID)

		w := doJSON(t, s, "GET", "/applications", applicantToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		var result struct {
			Applications []struct {
				JobTitle string `json:"jobTitle"`
			} `json:"applications"`
		}
		decodeBody(t, w, &result)
		if len(result.Applications) != 1 || result.Applications[0].JobTitle != "Art Director" {
			t.Errorf("unexpected applications %+v", result.Applications)
		}
	})

	t.Run("a stranger cannot read an application", func(t *testing.T) {
		appID := apply(t)
		defer withdraw(appID)

		w := doJSON(t, s, "GET", "/applications/"+appID, strangerToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", w.Code)
		}

		w = doJSON(t, s, "GET", "/applications/"+appID, ownerToken, nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected owner read to succeed, got %d", w.Code)
		}
	})

	t.Run("the applicant cannot change status", func(t *testing.T) {
		appID := apply(t)
		defer withdraw(appID)

		w := doJSON(t, s, "PATCH", "/applications/"+appID, applicantToken, map[string]string{
			"status": "accepted",
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("a status change cannot be smuggled into a document patch", func(t *testing.T) {
		appID := apply(t)
		defer withdraw(appID)

		w := doJSON(t, s, "PATCH", "/applications/"+appID, applicantToken, map[string]string{
			"resumeUrl": "https://example.com/cv2.pdf",
			"status":    "accepted",
		})
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
		}

		// Nothing from the denied patch may be applied.
		app, err := s.ApplicationsStore.ApplicationByID(appID)
		if err != nil {
			t.Fatalf("failed to load application: %v", err)
		}
		if app.Status != "pending" || app.ResumeURL != "https://example.com/cv.pdf" {
			t.Errorf("denied patch was partially applied: %+v", app)
		}
	})

	t.Run("the company owner moves status", func(t *testing.T) {
		appID := apply(t)
		defer withdraw(appID)

		w := doJSON(t, s, "PATCH", "/applications/"+appID, ownerToken, map[string]string{
			"status": "accepted",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var result struct {
			Status string `json:"Status"`
		}
		decodeBody(t, w, &result)
		if result.Status != "accepted" {
			t.Errorf("expected accepted, got %q", result.Status)
		}
	})

	t.Run("the owner cannot edit the applicant's documents", func(t *testing.T) {
		appID := apply(t)
		defer withdraw(appID)

		w := doJSON(t, s, "PATCH", "/applications/"+appID, ownerToken, map[string]string{
			"coverLetter": "forged",
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", w.Code)
		}
	})

	t.Run("unknown status values are rejected", func(t *testing.T) {
		appID := apply(t)
		defer withdraw(appID)

		w := doJSON(t, s, "PATCH", "/applications/"+appID, ownerToken, map[string]string{
			"status": "maybe",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("the applicant updates their documents", func(t *testing.T) {
		appID := apply(t)
		defer withdraw(appID)

		w := doJSON(t, s, "PATCH", "/applications/"+appID, applicantToken, map[string]string{
			"coverLetter": "updated letter",
		})
		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("only the applicant can withdraw", func(t *testing.T) {
		appID := apply(t)

		w := doJSON(t, s, "DELETE", "/applications/"+appID, ownerToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403 for owner, got %d", w.Code)
		}

		w = doJSON(t, s, "DELETE", "/applications/"+appID, applicantToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		w = doJSON(t, s, "GET", "/applications/"+appID, applicantToken, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404 after withdrawal, got %d", w.Code)
		}
	})
}
