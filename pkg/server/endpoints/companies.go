package endpoints

import (
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

// RegisterCompaniesEndpoints registers the employer profile endpoints
func RegisterCompaniesEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/companies", handleListCompanies(s)).Methods("GET")
	router.HandleFunc("/companies/{id}", handleGetCompany(s)).Methods("GET")
	router.HandleFunc("/companies/{id}/jobs", handleListCompanyJobs(s)).Methods("GET")
	router.Handle("/companies", s.Auth.Require(handleCreateCompany(s))).Methods("POST")
	router.Handle("/companies/{id}", s.Auth.Require(handleUpdateCompany(s))).Methods("PATCH")
	router.Handle("/companies/{id}", s.Auth.Require(handleDeleteCompany(s))).Methods("DELETE")
	router.Handle("/companies/verify/{id}", s.Auth.Require(handleVerifyCompany(s))).Methods("POST")
}

type createCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Logo        string `json:"logo"`
	TaxID       string `json:"taxId"`
}

type updateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Logo        *string `json:"logo"`
	Verified    *bool   `json:"verified"`
}

func handleCreateCompany(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req createCompanyRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Name == "" || req.TaxID == "" {
			respondWithError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		company := &model.Company{
			ID:          utils.NewID(),
			OwnerID:     id.UserID,
			Name:        req.Name,
			Description: req.Description,
			Website:     req.Website,
			Logo:        req.Logo,
			TaxID:       req.TaxID,
		}
		company.Slug = slug.Make(company.Name, company.ID)

		if err := s.CompaniesStore.CreateCompany(company); err != nil {
			respondStoreError(w, err, "create", "company")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "create", EntityKind: "company", EntityID: company.ID,
			Success: true,
		})
		respondWithJSON(w, http.StatusCreated, company)
	}
}

func handleListCompanies(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := listParams(r)

		companies, err := s.CompaniesStore.ListCompanies(limit, offset)
		if err != nil {
			respondStoreError(w, err, "list", "companies")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{"companies": companies})
	}
}

func handleGetCompany(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company, err := s.CompaniesStore.CompanyByID(mux.Vars(r)["id"])
		if err != nil {
			respondStoreError(w, err, "fetch", "company")
			return
		}

		respondWithJSON(w, http.StatusOK, company)
	}
}

func handleListCompanyJobs(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := mux.Vars(r)["id"]

		if _, err := s.CompaniesStore.CompanyByID(companyID); err != nil {
			respondStoreError(w, err, "list", "jobs")
			return
		}

		jobs, err := s.JobsStore.ListJobsByCompany(companyID)
		if err != nil {
			respondStoreError(w, err, "list", "jobs")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
	}
}

func handleUpdateCompany(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		companyID := mux.Vars(r)["id"]

		company, err := s.CompaniesStore.CompanyByID(companyID)
		if err != nil {
			respondStoreError(w, err, "update", "company")
			return
		}

		var req updateCompanyRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := authz.CanUpdateCompany(id, company, req.Verified != nil); err != nil {
			respondAuthzError(w, err)
			return
		}

		patch := map[string]interface{}{}
		if req.Name != nil {
			if *req.Name == "" {
				respondWithError(w, http.StatusBadRequest, "Name cannot be empty")
				return
			}
			patch["name"] = *req.Name
			patch["slug"] = slug.Make(*req.Name, company.ID)
		}
		if req.Description != nil {
			patch["description"] = *req.Description
		}
		if req.Website != nil {
			patch["website"] = *req.Website
		}
		if req.Logo != nil {
			patch["logo"] = *req.Logo
		}
		if req.Verified != nil {
			patch["verified"] = *req.Verified
		}
		if len(patch) == 0 {
			respondWithError(w, http.StatusBadRequest, "Empty patch")
			return
		}

		updated, err := s.CompaniesStore.UpdateCompany(companyID, patch)
		if err != nil {
			respondStoreError(w, err, "update", "company")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "update", EntityKind: "company", EntityID: companyID,
			Success: true,
		})
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeleteCompany(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		companyID := mux.Vars(r)["id"]

		company, err := s.CompaniesStore.CompanyByID(companyID)
		if err != nil {
			respondStoreError(w, err, "delete", "company")
			return
		}
		if err := authz.CanDeleteCompany(id, company); err != nil {
			respondAuthzError(w, err)
			return
		}

		if err := s.CompaniesStore.DeleteCompany(companyID); err != nil {
			respondStoreError(w, err, "delete", "company")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "delete", EntityKind: "company", EntityID: companyID,
			Success: true,
		})
		respondWithSuccess(w)
	}
}

// handleVerifyCompany flips the verified flag. Admin only; verification is
// the gate that lets a company start posting jobs.
func handleVerifyCompany(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		companyID := mux.Vars(r)["id"]

		if err := authz.CanVerifyCompany(id); err != nil {
			respondAuthzError(w, err)
			return
		}

		company, err := s.CompaniesStore.SetVerified(companyID, true)
		if err != nil {
			respondStoreError(w, err, "verify", "company")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "verify", EntityKind: "company", EntityID: companyID,
			Success: true,
		})
		respondWithJSON(w, http.StatusOK, company)
	}
}
