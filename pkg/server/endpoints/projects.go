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

// RegisterProjectsEndpoints registers the portfolio project endpoints
func RegisterProjectsEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/projects", handleListProjects(s)).Methods("GET")
	router.HandleFunc("/projects/{id}", handleGetProject(s)).Methods("GET")
	router.Handle("/projects", s.Auth.Require(handleCreateProject(s))).Methods("POST")
	router.Handle("/projects/{id}", s.Auth.Require(handleUpdateProject(s))).Methods("PATCH")
	router.Handle("/projects/{id}", s.Auth.Require(handleDeleteProject(s))).Methods("DELETE")
	router.Handle("/projects/{id}/like", s.Auth.Require(handleToggleLike(s))).Methods("POST")
}

type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	CoverImage  string `json:"coverImage"`
	Tags        string `json:"tags"`
}

type updateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	CoverImage  *string `json:"coverImage"`
	Tags        *string `json:"tags"`
}

func handleCreateProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req createProjectRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		project := &model.Project{
			ID:          utils.NewID(),
			AuthorID:    id.UserID,
			Title:       req.Title,
			Description: req.Description,
			Content:     req.Content,
			CoverImage:  req.CoverImage,
			Tags:        req.Tags,
		}
		project.Slug = slug.Make(project.Title, project.ID)

		if err := s.ProjectsStore.CreateProject(project); err != nil {
			respondStoreError(w, err, "create", "project")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "create", EntityKind: "project", EntityID: project.ID,
			Success: true,
		})
		respondWithJSON(w, http.StatusCreated, project)
	}
}

func handleListProjects(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := listParams(r)

		projects, err := s.ProjectsStore.ListProjects(limit, offset)
		if err != nil {
			respondStoreError(w, err, "list", "projects")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
	}
}

// handleGetProject returns a single project. Fetching a project counts as a
// view; each successful GET bumps the counter by one.
func handleGetProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := mux.Vars(r)["id"]

		project, err := s.ProjectsStore.ProjectByID(projectID)
		if err != nil {
			respondStoreError(w, err, "fetch", "project")
			return
		}

		respondWithJSON(w, http.StatusOK, project)
	}
}

func handleUpdateProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		projectID := mux.Vars(r)["id"]

		project, err := s.ProjectsStore.ProjectRecord(projectID)
		if err != nil {
			respondStoreError(w, err, "update", "project")
			return
		}
		if err := authz.CanMutateProject(id, project); err != nil {
			respondAuthzError(w, err)
			return
		}

		var req updateProjectRequest
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
			// A title change regenerates the slug; old links go stale.
			patch["slug"] = slug.Make(*req.Title, project.ID)
		}
		if req.Description != nil {
			patch["description"] = *req.Description
		}
		if req.Content != nil {
			patch["content"] = *req.Content
		}
		if req.CoverImage != nil {
			patch["cover_image"] = *req.CoverImage
		}
		if req.Tags != nil {
			patch["tags"] = *req.Tags
		}
		if len(patch) == 0 {
			respondWithError(w, http.StatusBadRequest, "Empty patch")
			return
		}

		updated, err := s.ProjectsStore.UpdateProject(projectID, patch)
		if err != nil {
			respondStoreError(w, err, "update", "project")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "update", EntityKind: "project", EntityID: projectID,
			Success: true,
		})
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeleteProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		projectID := mux.Vars(r)["id"]

		project, err := s.ProjectsStore.ProjectRecord(projectID)
		if err != nil {
			respondStoreError(w, err, "delete", "project")
			return
		}
		if err := authz.CanMutateProject(id, project); err != nil {
			respondAuthzError(w, err)
			return
		}

		if err := s.ProjectsStore.DeleteProject(projectID); err != nil {
			respondStoreError(w, err, "delete", "project")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "delete", EntityKind: "project", EntityID: projectID,
			Success: true,
		})
		respondWithSuccess(w)
	}
}

func handleToggleLike(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		projectID := mux.Vars(r)["id"]

		if _, err := s.ProjectsStore.ProjectRecord(projectID); err != nil {
			respondStoreError(w, err, "like", "project")
			return
		}

		liked, count, err := s.ProjectsStore.ToggleLike(projectID, id.UserID)
		if err != nil {
			respondStoreError(w, err, "like", "project")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"liked":     liked,
			"likeCount": count,
		})
	}
}
