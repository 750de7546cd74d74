package endpoints

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/folioboard/folioboard/pkg/audit"
	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server"
	"github.com/folioboard/folioboard/pkg/server/store"
	"github.com/folioboard/folioboard/pkg/utils"
)

// RegisterAuthEndpoints registers the registration and login endpoints
func RegisterAuthEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/auth/register", handleRegister(s)).Methods("POST")
	router.HandleFunc("/auth/login", handleLogin(s)).Methods("POST")
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the public view of a user record.
type userResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Image   string `json:"image,omitempty"`
	Bio     string `json:"bio,omitempty"`
	Website string `json:"website,omitempty"`
	Role    string `json:"role"`
	Premium bool   `json:"premium"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Image:   u.Image,
		Bio:     u.Bio,
		Website: u.Website,
		Role:    u.Role,
		Premium: u.Premium,
	}
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func handleRegister(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondStoreError(w, err, "register", "user")
			return
		}

		user := &model.User{
			ID:             utils.NewID(),
			Name:           req.Name,
			Email:          req.Email,
			Image:          req.Image,
			PasswordDigest: string(digest),
			Role:           model.RoleUser,
		}

		if err := s.UsersStore.CreateUser(user); err != nil {
			respondStoreError(w, err, "register", "user")
			return
		}

		token, err := s.Sessions.Issue(user)
		if err != nil {
			respondStoreError(w, err, "register", "user")
			return
		}

		respondWithJSON(w, http.StatusCreated, sessionResponse{Token: token, User: toUserResponse(user)})
	}
}

func handleLogin(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.Email == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		user, err := s.UsersStore.UserByEmail(req.Email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				audit.Log(audit.AuthnEvent{Email: req.Email, ClientIP: clientIP(r), ErrorMessage: "unknown user"})
				respondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			respondStoreError(w, err, "log in", "user")
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(req.Password)) != nil {
			audit.Log(audit.AuthnEvent{Email: req.Email, ClientIP: clientIP(r), ErrorMessage: "bad password"})
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token, err := s.Sessions.Issue(user)
		if err != nil {
			respondStoreError(w, err, "log in", "user")
			return
		}

		audit.Log(audit.AuthnEvent{Email: req.Email, ClientIP: clientIP(r), Success: true})
		respondWithJSON(w, http.StatusOK, sessionResponse{Token: token, User: toUserResponse(user)})
	}
}
