package endpoints

import (
	"net/http"

	"github.com/folioboard/folioboard/pkg/audit"
	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server"
)

// RegisterSubscriptionsEndpoints registers the premium tier endpoints
func RegisterSubscriptionsEndpoints(s *server.Server) {
	router := s.Router

	router.Handle("/subscription", s.Auth.Require(handleGetSubscription(s))).Methods("GET")
	router.Handle("/subscription", s.Auth.Require(handleSubscribe(s))).Methods("POST")
	router.Handle("/subscription", s.Auth.Require(handleCancelSubscription(s))).Methods("DELETE")
}

type subscribeRequest struct {
	Plan string `json:"plan"`
}

func handleGetSubscription(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		sub, err := s.SubscriptionsStore.ActiveSubscription(id.UserID)
		if err != nil {
			respondStoreError(w, err, "fetch", "subscription")
			return
		}

		respondWithJSON(w, http.StatusOK, sub)
	}
}

func handleSubscribe(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req subscribeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if !model.ValidPlan(req.Plan) {
			respondWithError(w, http.StatusBadRequest, "Invalid plan")
			return
		}

		sub, err := s.SubscriptionsStore.Subscribe(id.UserID, req.Plan)
		if err != nil {
			respondStoreError(w, err, "create", "subscription")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "create", EntityKind: "subscription", EntityID: sub.ID,
			Success: true,
		})
		respondWithJSON(w, http.StatusCreated, sub)
	}
}

func handleCancelSubscription(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		sub, err := s.SubscriptionsStore.Cancel(id.UserID)
		if err != nil {
			respondStoreError(w, err, "cancel", "subscription")
			return
		}

		audit.Log(audit.MutateEvent{
			UserID: id.UserID, ClientIP: clientIP(r),
			Operation: "cancel", EntityKind: "subscription", EntityID: sub.ID,
			Success: true,
		})
		respondWithJSON(w, http.StatusOK, sub)
	}
}
