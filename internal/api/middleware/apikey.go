package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/commishhq/commission-tracker-backend/internal/api/response"
)

// Time tokens are an HMAC of the current unix minute keyed with the API key.
// A token from the current or previous minute is accepted, so clock skew of
// under a minute does not reject callers.
const timeTokenWindow = 2

// GenerateTimeToken produces the time token a caller must send alongside the
// API key in the X-Time-Token header.
func GenerateTimeToken(apiKey string) string {
	return timeTokenFor(apiKey, time.Now().Unix()/60)
}

// APIKeyMiddleware authenticates mutating endpoints with a shared API key
// plus a short-lived time token. The key is read from INTERNAL_API_KEY on
// each request, so tests can swap it without rebuilding the router.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := os.Getenv("INTERNAL_API_KEY")
		if apiKey == "" {
			response.RespondError(w, http.StatusInternalServerError, "authentication failed", "Authentication not loaded")
			return
		}

		providedKey := r.Header.Get("X-API-Key")
		if providedKey == "" {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Missing API key")
			return
		}
		if !hmac.Equal([]byte(providedKey), []byte(apiKey)) {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Missing Time token")
			return
		}
		if !validTimeToken(apiKey, timeToken) {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func validTimeToken(apiKey, token string) bool {
	minute := time.Now().Unix() / 60
	for i := int64(0); i < timeTokenWindow; i++ {
		if hmac.Equal([]byte(token), []byte(timeTokenFor(apiKey, minute-i))) {
			return true
		}
	}
	return false
}

func timeTokenFor(apiKey string, minute int64) string {
	mac := hmac.New(sha256.New, []byte(apiKey))
	fmt.Fprintf(mac, "%d", minute)
	return hex.EncodeToString(mac.Sum(nil))
}
