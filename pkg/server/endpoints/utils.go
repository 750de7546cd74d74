package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/folioboard/folioboard/pkg/authz"
	"github.com/folioboard/folioboard/pkg/config"
	"github.com/folioboard/folioboard/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithSuccess(w http.ResponseWriter) {
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// notFoundMessages maps store sentinels to the wire-level not-found message.
var notFoundMessages = map[error]string{
	store.ErrUserNotFound:         "User not found",
	store.ErrProjectNotFound:      "Project not found",
	store.ErrCompanyNotFound:      "Company not found",
	store.ErrJobNotFound:          "Job not found",
	store.ErrApplicationNotFound:  "Application not found",
	store.ErrPostNotFound:         "Post not found",
	store.ErrCommentNotFound:      "Comment not found",
	store.ErrSubscriptionNotFound: "Subscription not found",
}

// conflictMessages maps store conflict sentinels to 409 messages.
var conflictMessages = map[error]string{
	store.ErrDuplicateEmail:       "Email already registered",
	store.ErrDuplicateTaxID:       "Tax id already registered",
	store.ErrDuplicateApplication: "Already applied to this job",
	store.ErrAlreadySubscribed:    "Already subscribed",
}

// respondStoreError translates a storage error into the uniform envelope.
// Known sentinels map to 404 or 409; anything else is logged server-side
// and surfaced as a generic 500 so no internal detail leaks.
func respondStoreError(w http.ResponseWriter, err error, verb, noun string) {
	for sentinel, message := range notFoundMessages {
		if errors.Is(err, sentinel) {
			respondWithError(w, http.StatusNotFound, message)
			return
		}
	}
	for sentinel, message := range conflictMessages {
		if errors.Is(err, sentinel) {
			respondWithError(w, http.StatusConflict, message)
			return
		}
	}

	log.Printf("failed to %s %s: %v", verb, noun, err)
	respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to %s %s", verb, noun))
}

// respondAuthzError translates a policy denial. 401 is reserved for missing
// or invalid authentication; an authenticated caller that lacks permission
// gets 403. The admin-only endpoints are the one case that names a reason.
func respondAuthzError(w http.ResponseWriter, err error) {
	if errors.Is(err, authz.ErrUnauthenticated) {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if errors.Is(err, authz.ErrAdminRequired) {
		respondWithError(w, http.StatusForbidden, "Unauthorized - Admin access required")
		return
	}
	respondWithError(w, http.StatusForbidden, "Unauthorized")
}

// decodeJSON decodes a request body, responding with a 400 on failure.
// The bool result reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer func() { _ = r.Body.Close() }()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// listParams reads limit/offset query parameters, clamping the limit to the
// configured bounds. Bad or missing values fall back to defaults.
func listParams(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	requested, _ := strconv.Atoi(q.Get("limit"))
	limit = config.Get().ClampLimit(requested)
	offset, _ = strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}
