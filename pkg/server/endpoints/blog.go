package endpoints

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/folioboard/folioboard/pkg/audit"
	"github.com/folioboard/folioboard/pkg/authz"
	"github.com/folioboard/folioboard/pkg/config"
	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server"
	"github.com/folioboard/folioboard/pkg/slug"
	"github.com/folioboard/folioboard/pkg/utils"
)

// RegisterBlogEndpoints registers the blog endpoints
func RegisterBlogEndpoints(s *server.Server) {
	router := s.Router

	router.Handle("/blog", s.Auth.Optional(handleListPosts(s))).Methods("GET")
	router.Handle("/blog/{slug}", s.Auth.Optional(handleGetPost(s))).Methods("GET")
	router.Handle("/blog", s.Auth.Require(handleCreatePost(s))).Methods("POST")
	router.Handle("/blog/{id}", s.Auth.Require(handleUpdatePost(s))).Methods("PATCH")
	router.Handle("/blog/{id}", s.Auth.Require(handleDeletePost(s))).Methods("DELETE")
}

type createPostRequest struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CoverImage string `json:"coverImage"`
	Published  bool   `json:"published"`
}

type updatePostRequest struct {
	Title      *string `json:"title"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	CoverImage *string `json:"coverImage"`
	Published  *bool   `json:"published"`
}

type postResponse struct {
	model.BlogPost
	HTML string `json:"html"`
}

// renderMarkdown converts a post's markdown content to HTML. Raw HTML in
// the source is stripped unless explicitly allowed by configuration.
func renderMarkdown(content string) (string, error) {
	opts := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
	}
	if config.Get().BlogUnsafeHTML {
		opts = append(opts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	var buf bytes.Buffer
	if err := goldmark.New(opts...).Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func handleCreatePost(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		if err := authz.CanWriteBlog(id); err != nil {
			respondAuthzError(w, err)
			return
		}

		var req createPostRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		post := &model.BlogPost{
			ID:         utils.NewID(),
			AuthorID:   id.UserID,
			Title:      req.Title,
			Excerpt:    req.Excerpt,
			Content:    req.Content,
			CoverImage: req.CoverImage,
			Published:  req.Published,
		}
		post.Slug = slug.Make(post.Title, post.ID)

		if err := s.BlogStore.CreatePost(post); err != nil {
			respondStoreError(w, err, "create", "post")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "create", EntityKind: "post", EntityID: post.ID,
			Success: true,
		})
		respondWithJSON(w, http.StatusCreated, post)
	}
}

// handleListPosts lists blog posts. Anonymous and non-admin callers only
// see published posts; admins see drafts as well.
func handleListPosts(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		limit, offset := listParams(r)

		publishedOnly := id == nil || !id.IsAdmin()

		posts, err := s.BlogStore.ListPosts(publishedOnly, limit, offset)
		if err != nil {
			respondStoreError(w, err, "list", "posts")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
	}
}

func handleGetPost(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		post, err := s.BlogStore.PostBySlug(mux.Vars(r)["slug"])
		if err != nil {
			respondStoreError(w, err, "fetch", "post")
			return
		}

		// Drafts don't exist for anyone but admins.
		if !post.Published && (id == nil || !id.IsAdmin()) {
			respondWithError(w, http.StatusNotFound, "Post not found")
			return
		}

		rendered, err := renderMarkdown(post.Content)
		if err != nil {
			respondStoreError(w, err, "render", "post")
			return
		}

		respondWithJSON(w, http.StatusOK, postResponse{BlogPost: *post, HTML: rendered})
	}
}

func handleUpdatePost(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		postID := mux.Vars(r)["id"]

		if err := authz.CanWriteBlog(id); err != nil {
			respondAuthzError(w, err)
			return
		}

		post, err := s.BlogStore.PostByID(postID)
		if err != nil {
			respondStoreError(w, err, "update", "post")
			return
		}

		var req updatePostRequest
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
			patch["slug"] = slug.Make(*req.Title, post.ID)
		}
		if req.Excerpt != nil {
			patch["excerpt"] = *req.Excerpt
		}
		if req.Content != nil {
			patch["content"] = *req.Content
		}
		if req.CoverImage != nil {
			patch["cover_image"] = *req.CoverImage
		}
		if req.Published != nil {
			patch["published"] = *req.Published
		}
		if len(patch) == 0 {
			respondWithError(w, http.StatusBadRequest, "Empty patch")
			return
		}

		updated, err := s.BlogStore.UpdatePost(postID, patch)
		if err != nil {
			respondStoreError(w, err, "update", "post")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "update", EntityKind: "post", EntityID: postID,
			Success: true,
		})
		respondWithJSON(w, http.StatusOK, updated)
	}
}

func handleDeletePost(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		postID := mux.Vars(r)["id"]

		if err := authz.CanWriteBlog(id); err != nil {
			respondAuthzError(w, err)
			return
		}

		if _, err := s.BlogStore.PostByID(postID); err != nil {
			respondStoreError(w, err, "delete", "post")
			return
		}

		if err := s.BlogStore.DeletePost(postID); err != nil {
			respondStoreError(w, err, "delete", "post")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "delete", EntityKind: "post", EntityID: postID,
			Success: true,
		})
		respondWithSuccess(w)
	}
}
