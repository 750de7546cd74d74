package endpoints

import (
	"net/http"

	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/server"
)

// RegisterWhoamiEndpoint registers the identity echo endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	s.Router.Handle("/whoami", s.Auth.Require(handleWhoami(s))).Methods("GET")
}

func handleWhoami(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		user, err := s.UsersStore.UserByID(id.UserID)
		if err != nil {
			respondStoreError(w, err, "fetch", "user")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"user":      toUserResponse(user),
			"client_ip": id.RemoteIP.String(),
			"token": map[string]interface{}{
				"issued_at":  id.IssuedAt,
				"expires_at": id.ExpiresAt,
			},
		})
	}
}
