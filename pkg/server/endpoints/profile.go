package endpoints

import (
	"net/http"

	"github.com/folioboard/folioboard/pkg/audit"
	"github.com/folioboard/folioboard/pkg/authz"
	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/server"
)

// RegisterProfileEndpoints registers the profile endpoints
func RegisterProfileEndpoints(s *server.Server) {
	router := s.Router

	router.Handle("/profile", s.Auth.Require(handleGetProfile(s))).Methods("GET")
	router.Handle("/profile", s.Auth.Require(handleUpdateProfile(s))).Methods("PATCH")
}

// updateProfileRequest deliberately has no role or premium fields; those
// are only writable through the admin CLI and the subscription flow.
type updateProfileRequest struct {
	Name    *string `json:"name"`
	Image   *string `json:"image"`
	Bio     *string `json:"bio"`
	Website *string `json:"website"`
}

func handleGetProfile(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		user, err := s.UsersStore.UserByID(id.UserID)
		if err != nil {
			respondStoreError(w, err, "fetch", "profile")
			return
		}

		respondWithJSON(w, http.StatusOK, toUserResponse(user))
	}
}

func handleUpdateProfile(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		user, err := s.UsersStore.UserByID(id.UserID)
		if err != nil {
			respondStoreError(w, err, "update", "profile")
			return
		}
		if err := authz.CanUpdateProfile(id, user); err != nil {
			respondAuthzError(w, err)
			return
		}

		var req updateProfileRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		patch := map[string]interface{}{}
		if req.Name != nil {
			if *req.Name == "" {
				respondWithError(w, http.StatusBadRequest, "Name cannot be empty")
				return
			}
			patch["name"] = *req.Name
		}
		if req.Image != nil {
			patch["image"] = *req.Image
		}
		if req.Bio != nil {
			patch["bio"] = *req.Bio
		}
		if req.Website != nil {
			patch["website"] = *req.Website
		}
		if len(patch) == 0 {
			respondWithError(w, http.StatusBadRequest, "Empty patch")
			return
		}

		updated, err := s.UsersStore.UpdateUser(id.UserID, patch)
		if err != nil {
			respondStoreError(w, err, "update", "profile")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "update", EntityKind: "user", EntityID: id.UserID,
			Success: true,
		})
		respondWithJSON(w, http.StatusOK, toUserResponse(updated))
	}
}
