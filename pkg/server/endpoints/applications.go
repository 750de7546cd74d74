package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/folioboard/folioboard/pkg/audit"
	"github.com/folioboard/folioboard/pkg/authz"
	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server"
)

// RegisterApplicationsEndpoints registers the job application endpoints
func RegisterApplicationsEndpoints(s *server.Server) {
	router := s.Router

	router.Handle("/applications", s.Auth.Require(handleListOwnApplications(s))).Methods("GET")
	router.Handle("/applications/{id}", s.Auth.Require(handleGetApplication(s))).Methods("GET")
	router.Handle("/applications/{id}", s.Auth.Require(handleUpdateApplication(s))).Methods("PATCH")
	router.Handle("/applications/{id}", s.Auth.Require(handleDeleteApplication(s))).Methods("DELETE")
}

type updateApplicationRequest struct {
	Status      *string `json:"status"`
	ResumeURL   *string `json:"resumeUrl"`
	CoverLetter *string `json:"coverLetter"`
}

// applicationOwner loads an application together with the owner of the
// company behind its job.
func applicationOwner(s *server.Server, appID string) (*model.JobApplication, string, error) {
	app, err := s.ApplicationsStore.ApplicationByID(appID)
	if err != nil {
		return nil, "", err
	}
	job, err := s.JobsStore.JobByID(app.JobID)
	if err != nil {
		return nil, "", err
	}
	company, err := s.CompaniesStore.CompanyByID(job.CompanyID)
	if err != nil {
		return nil, "", err
	}
	return app, company.OwnerID, nil
}

func handleListOwnApplications(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		apps, err := s.ApplicationsStore.ListApplicationsByUser(id.UserID)
		if err != nil {
			respondStoreError(w, err, "list", "applications")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{"applications": apps})
	}
}

func handleGetApplication(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		app, ownerID, err := applicationOwner(s, mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err, "fetch", "application")
			return
		}
		if err := authz.CanReadApplication(id, app, ownerID); err != nil {
			respondAuthzError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, app)
	}
}

// handleUpdateApplication applies a sparse patch. Status changes belong to
// the company owner and document changes to the applicant; a patch mixing
// groups the caller isn't allowed to touch is rejected whole.
func handleUpdateApplication(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		appID := mux.Vars(r)["id"]

		app, ownerID, err := applicationOwner(s, appID)
		if err != nil {
			respondStoreError(w, err, "update", "application")
			return
		}

		var req updateApplicationRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		fields := authz.ApplicationFields{
			Status:    req.Status != nil,
			Documents: req.ResumeURL != nil || req.CoverLetter != nil,
		}
		if err := authz.CanPatchApplication(id, app, ownerID, fields); err != nil {
			respondAuthzError(w, err)
			return
		}

		patch := map[string]interface{}{}
		if req.Status != nil {
			if !model.ValidApplicationStatus(*req.Status) {
				respondWithError(w, http.StatusBadRequest, "Invalid status")
				return
			}
			patch["status"] = *req.Status
		}
		if req.ResumeURL != nil {
			patch["resume_url"] = *req.ResumeURL
		}
		if req.CoverLetter != nil {
			patch["cover_letter"] = *req.CoverLetter
		}

		updated, err := s.ApplicationsStore.UpdateApplication(appID, patch)
		if err != nil {
			respondStoreError(w, err, "update", "application")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "update", EntityKind: "application", EntityID: appID,
			Success: true,
		})
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeleteApplication(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		appID := mux.Vars(r)["id"]

		app, err := s.ApplicationsStore.ApplicationByID(appID)
		if err != nil {
			respondStoreError(w, err, "withdraw", "application")
			return
		}
		if err := authz.CanDeleteApplication(id, app); err != nil {
			respondAuthzError(w, err)
			return
		}

		if err := s.ApplicationsStore.DeleteApplication(appID); err != nil {
			respondStoreError(w, err, "withdraw", "application")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "delete", EntityKind: "application", EntityID: appID,
			Success: true,
		})
		respondWithSuccess(w)
	}
}
