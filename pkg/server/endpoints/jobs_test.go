package endpoints

import (
	"net/http"
	"testing"
)

func TestJobsEndpoints(t *testing.T) {
	s := NewTestServer(t)
	owner, ownerToken := CreateTestUser(t, s, "employer", "user")
	_, seekerToken := CreateTestUser(t, s, "seeker", "user")

	verified := CreateTestCompany(t, s, owner.ID, "verified-studio", true)
	unverified := CreateTestCompany(t, s, owner.ID, "new-studio", false)

	t.Run("posting under an unverified company is forbidden", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/companies/"+unverified.ID+"/jobs", ownerToken, map[string]interface{}{
			"title": "Illustrator",
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("posting under a verified company", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/companies/"+verified.ID+"/jobs", ownerToken, map[string]interface{}{
			"title":      "Product Designer",
			"employment": "full-time",
			"salaryMin":  60000,
			"salaryMax":  90000,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var result struct {
			Active bool `json:"Active"`
		}
		decodeBody(t, w, &result)
		if !result.Active {
			t.Error("new jobs should start active")
		}
	})

	t.Run("only the company owner can post", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/companies/"+verified.ID+"/jobs", seekerToken, map[string]interface{}{
			"title": "Fake Posting",
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", w.Code)
		}
	})

	t.Run("job list only includes active postings", func(t *testing.T) {
		CreateTestJob(t, s, verified.ID, "Open Role", true)
		CreateTestJob(t, s, verified.ID, "Closed Role", false)

		w := doJSON(t, s, "GET", "/jobs", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		var result struct {
			Jobs []struct {
				Active bool `json:"Active"`
			} `json:"jobs"`
		}
		decodeBody(t, w, &result)
		for _, job := range result.Jobs {
			if !job.Active {
				t.Error("inactive job leaked into the default listing")
			}
		}
	})

	t.Run("apply to a job", func(t *testing.T) {
		job := CreateTestJob(t, s, verified.ID, "Motion Designer", true)

		w := doJSON(t, s, "POST", "/jobs/"+job.ID+"/apply", seekerToken, map[string]string{
			"resumeUrl":   "https://example.com/cv.pdf",
			"coverLetter": "hello",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var result struct {
			Status string `json:"Status"`
		}
		decodeBody(t, w, &result)
		if result.Status != "pending" {
			t.Errorf("expected pending status, got %q", result.Status)
		}
	})

	t.Run("applying twice conflicts", func(t *testing.T) {
		job := CreateTestJob(t, s, verified.ID, "Twice Role", true)

		w := doJSON(t, s, "POST", "/jobs/"+job.ID+"/apply", seekerToken, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("first apply failed: %d %s", w.Code, w.Body.String())
		}
		w = doJSON(t, s, "POST", "/jobs/"+job.ID+"/apply", seekerToken, nil)
		if w.Code != http.StatusConflict {
			t.Errorf("expected status 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("applying to an inactive job is rejected", func(t *testing.T) {
		job := CreateTestJob(t, s, verified.ID, "Closed Opening", false)

		w := doJSON(t, s, "POST", "/jobs/"+job.ID+"/apply", seekerToken, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("the company owner cannot apply to their own job", func(t *testing.T) {
		job := CreateTestJob(t, s, verified.ID, "Own Role", true)

		w := doJSON(t, s, "POST", "/jobs/"+job.ID+"/apply", ownerToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", w.Code)
		}
	})

	t.Run("only the owner sees a job's applications", func(t *testing.T) {
		job := CreateTestJob(t, s, verified.ID, "Screened Role", true)

		w := doJSON(t, s, "POST", "/jobs/"+job.ID+"/apply", seekerToken, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("apply failed: %d", w.Code)
		}

		w = doJSON(t, s, "GET", "/jobs/"+job.ID+"/applications", seekerToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403 for applicant, got %d", w.Code)
		}

		w = doJSON(t, s, "GET", "/jobs/"+job.ID+"/applications", ownerToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200 for owner, got %d: %s", w.Code, w.Body.String())
		}
		var result struct {
			Applications []struct {
				ApplicantName string `json:"applicantName"`
			} `json:"applications"`
		}
		decodeBody(t, w, &result)
		if len(result.Applications) != 1 || result.Applications[0].ApplicantName != "seeker" {
			t.Errorf("unexpected applications %+v", result.Applications)
		}
	})

	t.Run("deactivating a job via patch", func(t *testing.T) {
		job := CreateTestJob(t, s, verified.ID, "Winding Down", true)

		w := doJSON(t, s, "PATCH", "/jobs/"+job.ID, ownerToken, map[string]interface{}{
			"active": false,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		w = doJSON(t, s, "POST", "/jobs/"+job.ID+"/apply", seekerToken, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400 after deactivation, got %d", w.Code)
		}
	})
}
