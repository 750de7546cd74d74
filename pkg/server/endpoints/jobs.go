package endpoints

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/folioboard/folioboard/pkg/audit"
	"github.com/folioboard/folioboard/pkg/authz"
	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server"
	"github.com/folioboard/folioboard/pkg/slug"
	"github.com/folioboard/folioboard/pkg/utils"
)

// RegisterJobsEndpoints registers the job posting and application endpoints
func RegisterJobsEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/jobs", handleListJobs(s)).Methods("GET")
	router.HandleFunc("/jobs/{id}", handleGetJob(s)).Methods("GET")
	router.Handle("/companies/{id}/jobs", s.Auth.Require(handleCreateJob(s))).Methods("POST")
	router.Handle("/jobs/{id}", s.Auth.Require(handleUpdateJob(s))).Methods("PATCH")
	router.Handle("/jobs/{id}", s.Auth.Require(handleDeleteJob(s))).Methods("DELETE")
	router.Handle("/jobs/{id}/apply", s.Auth.Require(handleApplyToJob(s))).Methods("POST")
	router.Handle("/jobs/{id}/applications", s.Auth.Require(handleListJobApplications(s))).Methods("GET")
}

type createJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	SalaryMin   int64  `json:"salaryMin"`
	SalaryMax   int64  `json:"salaryMax"`
	Employment  string `json:"employment"`
}

type updateJobRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	SalaryMin   *int64  `json:"salaryMin"`
	SalaryMax   *int64  `json:"salaryMax"`
	Employment  *string `json:"employment"`
	Active      *bool   `json:"active"`
}

type applyRequest struct {
	ResumeURL   string `json:"resumeUrl"`
	CoverLetter string `json:"coverLetter"`
}

// jobCompany loads the company behind a job so ownership checks can run.
func jobCompany(s *server.Server, jobID string) (*model.Job, *model.Company, error) {
	details, err := s.JobsStore.JobByID(jobID)
	if err != nil {
		return nil, nil, err
	}
	company, err := s.CompaniesStore.CompanyByID(details.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	return &details.Job, company, nil
}

func handleCreateJob(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		companyID := mux.Vars(r)["id"]

		var req createJobRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		company, err := s.CompaniesStore.CompanyByID(companyID)
		if err != nil {
			respondStoreError(w, err, "create", "job")
			return
		}
		if err := authz.CanCreateJob(id, company); err != nil {
			respondAuthzError(w, err)
			return
		}

		job := &model.Job{
			ID:          utils.NewID(),
			CompanyID:   company.ID,
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			SalaryMin:   req.SalaryMin,
			SalaryMax:   req.SalaryMax,
			Employment:  req.Employment,
			Active:      true,
		}
		job.Slug = slug.Make(job.Title, job.ID)

		if err := s.JobsStore.CreateJob(job); err != nil {
			respondStoreError(w, err, "create", "job")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "create", EntityKind: "job", EntityID: job.ID,
			Success: true,
		})
		respondWithJSON(w, http.StatusCreated, job)
	}
}

// handleListJobs returns active postings. Passing all=true includes closed
// ones as well.
func handleListJobs(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := listParams(r)
		activeOnly := r.URL.Query().Get("all") != "true"

		jobs, err := s.JobsStore.ListJobs(activeOnly, limit, offset)
		if err != nil {
			respondStoreError(w, err, "list", "jobs")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
	}
}

func handleGetJob(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := s.JobsStore.JobByID(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err, "fetch", "job")
			return
		}

		respondWithJSON(w, http.StatusOK, job)
	}
}

func handleUpdateJob(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		jobID := mux.Vars(r)["id"]

		job, company, err := jobCompany(s, jobID)
		if err != nil {
			respondStoreError(w, err, "update", "job")
			return
		}
		if err := authz.CanMutateJob(id, company); err != nil {
			respondAuthzError(w, err)
			return
		}

		var req updateJobRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		patch := map[string]interface{}{}
		if req.Title != nil {
			if *req.Title == "" {
				respondWithError(w, http.StatusBadRequest, "Title cannot be empty")
				return
			}
			patch["title"] = *req.Title
			patch["slug"] = slug.Make(*req.Title, job.ID)
		}
		if req.Description != nil {
			patch["description"] = *req.Description
		}
		if req.Location != nil {
			patch["location"] = *req.Location
		}
		if req.SalaryMin != nil {
			patch["salary_min"] = *req.SalaryMin
		}
		if req.SalaryMax != nil {
			patch["salary_max"] = *req.SalaryMax
		}
		if req.Employment != nil {
			patch["employment"] = *req.Employment
		}
		if req.Active != nil {
			patch["active"] = *req.Active
		}
		if len(patch) == 0 {
			respondWithError(w, http.StatusBadRequest, "Empty patch")
			return
		}

		updated, err := s.JobsStore.UpdateJob(jobID, patch)
		if err != nil {
			respondStoreError(w, err, "update", "job")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "update", EntityKind: "job", EntityID: jobID,
			Success: true,
		})
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeleteJob(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		jobID := mux.Vars(r)["id"]

		_, company, err := jobCompany(s, jobID)
		if err != nil {
			respondStoreError(w, err, "delete", "job")
			return
		}
		if err := authz.CanMutateJob(id, company); err != nil {
			respondAuthzError(w, err)
			return
		}

		if err := s.JobsStore.DeleteJob(jobID); err != nil {
			respondStoreError(w, err, "delete", "job")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "delete", EntityKind: "job", EntityID: jobID,
			Success: true,
		})
		respondWithSuccess(w)
	}
}

func handleApplyToJob(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		jobID := mux.Vars(r)["id"]

		job, company, err := jobCompany(s, jobID)
		if err != nil {
			respondStoreError(w, err, "apply to", "job")
			return
		}
		if err := authz.CanApplyToJob(id, company); err != nil {
			respondAuthzError(w, err)
			return
		}
		if !job.Active {
			respondWithError(w, http.StatusBadRequest, "Job is no longer accepting applications")
			return
		}

		// Both documents are optional, so an empty body is fine.
		var req applyRequest
		defer func() { _ = r.Body.Close() }()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		app := &model.JobApplication{
			ID:          utils.NewID(),
			JobID:       jobID,
			UserID:      id.UserID,
			ResumeURL:   req.ResumeURL,
			CoverLetter: req.CoverLetter,
			Status:      model.ApplicationPending,
		}

		if err := s.ApplicationsStore.CreateApplication(app); err != nil {
			respondStoreError(w, err, "apply to", "job")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "create", EntityKind: "application", EntityID: app.ID,
			Success: true,
		})
		respondWithJSON(w, http.StatusCreated, app)
	}
}

// handleListJobApplications lists applications for a job. Only the owner of
// the posting company can see them.
func handleListJobApplications(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		jobID := mux.Vars(r)["id"]

		_, company, err := jobCompany(s, jobID)
		if err != nil {
			respondStoreError(w, err, "list", "applications")
			return
		}
		if err := authz.CanMutateJob(id, company); err != nil {
			respondAuthzError(w, err)
			return
		}

		apps, err := s.ApplicationsStore.ListApplicationsByJob(jobID)
		if err != nil {
			respondStoreError(w, err, "list", "applications")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{"applications": apps})
	}
}
