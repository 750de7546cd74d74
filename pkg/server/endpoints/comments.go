package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/folioboard/folioboard/pkg/audit"
	"github.com/folioboard/folioboard/pkg/authz"
	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server"
	"github.com/folioboard/folioboard/pkg/utils"
)

// RegisterCommentsEndpoints registers comment endpoints for both projects
// and blog posts
func RegisterCommentsEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/projects/{id}/comments", handleListComments(s, model.CommentOnProject)).Methods("GET")
	router.Handle("/projects/{id}/comments", s.Auth.Require(handleCreateComment(s, model.CommentOnProject))).Methods("POST")
	router.HandleFunc("/blog/{id}/comments", handleListComments(s, model.CommentOnBlog)).Methods("GET")
	router.Handle("/blog/{id}/comments", s.Auth.Require(handleCreateComment(s, model.CommentOnBlog))).Methods("POST")
	router.Handle("/projects/{parent}/comments/{id}", s.Auth.Require(handleDeleteComment(s, model.CommentOnProject))).Methods("DELETE")
	router.Handle("/blog/{parent}/comments/{id}", s.Auth.Require(handleDeleteComment(s, model.CommentOnBlog))).Methods("DELETE")
}

type createCommentRequest struct {
	Body string `json:"body"`
}

// commentParentExists checks that the parent entity is real before a
// comment is attached to it.
func commentParentExists(s *server.Server, parentKind, parentID string) error {
	switch parentKind {
	case model.CommentOnProject:
		_, err := s.ProjectsStore.ProjectRecord(parentID)
		return err
	default:
		_, err := s.BlogStore.PostByID(parentID)
		return err
	}
}

func handleCreateComment(s *server.Server, parentKind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		parentID := mux.Vars(r)["id"]

		if err := authz.CanComment(id); err != nil {
			respondAuthzError(w, err)
			return
		}

		if err := commentParentExists(s, parentKind, parentID); err != nil {
			respondStoreError(w, err, "comment on", parentKind)
			return
		}

		var req createCommentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Body == "" {
			respondWithError(w, http.StatusBadRequest, "Comment body cannot be empty")
			return
		}

		comment := &model.Comment{
			ID:         utils.NewID(),
			ParentKind: parentKind,
			ParentID:   parentID,
			AuthorID:   id.UserID,
			Body:       req.Body,
		}

		if err := s.CommentsStore.CreateComment(comment); err != nil {
			respondStoreError(w, err, "create", "comment")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "create", EntityKind: "comment", EntityID: comment.ID,
			Success: true,
		})
		respondWithJSON(w, http.StatusCreated, comment)
	}
}

func handleListComments(s *server.Server, parentKind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parentID := mux.Vars(r)["id"]

		if err := commentParentExists(s, parentKind, parentID); err != nil {
			respondStoreError(w, err, "list", "comments")
			return
		}

		comments, err := s.CommentsStore.ListComments(parentKind, parentID)
		if err != nil {
			respondStoreError(w, err, "list", "comments")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
	}
}

func handleDeleteComment(s *server.Server, parentKind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		vars := mux.Vars(r)
		commentID := vars["id"]

		comment, err := s.CommentsStore.CommentByID(commentID)
		if err != nil {
			respondStoreError(w, err, "delete", "comment")
			return
		}
		// A comment is only addressable under its own parent.
		if comment.ParentKind != parentKind || comment.ParentID != vars["parent"] {
			respondWithError(w, http.StatusNotFound, "Comment not found")
			return
		}
		if err := authz.CanDeleteComment(id, comment); err != nil {
			respondAuthzError(w, err)
			return
		}

		if err := s.CommentsStore.DeleteComment(commentID); err != nil {
			respondStoreError(w, err, "delete", "comment")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "delete", EntityKind: "comment", EntityID: commentID,
			Success: true,
		})
		respondWithSuccess(w)
	}
}
