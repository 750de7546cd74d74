package endpoints

import (
	"net/http"
	"testing"
)

func TestCompaniesEndpoints(t *testing.T) {
	s := NewTestServer(t)
	owner, ownerToken := CreateTestUser(t, s, "owner", "user")
	_, userToken := CreateTestUser(t, s, "bystander", "user")
	_, adminToken := CreateTestUser(t, s, "boss", "admin")

	t.Run("create company", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/companies", ownerToken, map[string]string{
			"name":  "Acme Studio",
			"taxId": "TAX-1",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var result struct {
			Verified bool `json:"Verified"`
		}
		decodeBody(t, w, &result)
		if result.Verified {
			t.Error("new companies must start unverified")
		}
	})

	t.Run("duplicate tax id conflicts", func(t *testing.T) {
		w := doJSON(t, s, "POST", "/companies", ownerToken, map[string]string{
			"name":  "Acme Clone",
			"taxId": "TAX-1",
		})
		if w.Code != http.StatusConflict {
			t.Errorf("expected status 409, got %d", w.Code)
		}
	})

	t.Run("verify requires admin", func(t *testing.T) {
		company := CreateTestCompany(t, s, owner.ID, "unverified-co", false)

		w := doJSON(t, s, "POST", "/companies/verify/"+company.ID, ownerToken, nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d", w.Code)
		}
		var result struct {
			Error string `json:"error"`
		}
		decodeBody(t, w, &result)
		if result.Error != "Unauthorized - Admin access required" {
			t.Errorf("unexpected error message %q", result.Error)
		}

		w = doJSON(t, s, "POST", "/companies/verify/"+company.ID, adminToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var verified struct {
			Verified bool `json:"Verified"`
		}
		decodeBody(t, w, &verified)
		if !verified.Verified {
			t.Error("expected company to be verified")
		}
	})

	t.Run("owner cannot patch verified flag", func(t *testing.T) {
		company := CreateTestCompany(t, s, owner.ID, "sneaky-co", false)

		w := doJSON(t, s, "PATCH", "/companies/"+company.ID, ownerToken, map[string]interface{}{
			"verified": true,
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("owner can patch other fields", func(t *testing.T) {
		company := CreateTestCompany(t, s, owner.ID, "editable-co", false)

		w := doJSON(t, s, "PATCH", "/companies/"+company.ID, ownerToken, map[string]string{
			"website": "https://example.com",
		})
		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		company := CreateTestCompany(t, s, owner.ID, "private-co", false)

		w := doJSON(t, s, "PATCH", "/companies/"+company.ID, userToken, map[string]string{
			"website": "https://evil.example.com",
		})
		if w.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", w.Code)
		}
	})

	t.Run("delete cascades to jobs and applications", func(t *testing.T) {
		company := CreateTestCompany(t, s, owner.ID, "closing-co", true)
		job := CreateTestJob(t, s, company.ID, "Designer", true)

		w := doJSON(t, s, "POST", "/jobs/"+job.ID+"/apply", userToken, map[string]string{
			"resumeUrl": "https://example.com/cv.pdf",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("failed to apply: %d %s", w.Code, w.Body.String())
		}

		w = doJSON(t, s, "DELETE", "/companies/"+company.ID, ownerToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var jobCount, appCount int64
		s.DB.Table("jobs").Where("company_id = ?", company.ID).Count(&jobCount)
		s.DB.Table("job_applications").Where("job_id = ?", job.ID).Count(&appCount)
		if jobCount != 0 || appCount != 0 {
			t.Errorf("expected cascade delete, got %d jobs and %d applications", jobCount, appCount)
		}
	})
}
