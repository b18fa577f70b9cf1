package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/repository"
)

// UsernameKey is where the resolved acting username is stored on the gin
// context for downstream handlers.
const UsernameKey = "username"

// RequireUser resolves the acting username from the x-username header or,
// failing that, the request body's "username" field, and rejects requests
// whose username is missing or not registered. On success the username is
// attached to the context.
//
// This is an identity assertion, not authentication: any request bearing a
// known username is trusted, with no password, token or signature. Kept
// for functional parity with the original API; not security-grade.
func RequireUser(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := resolveUsername(c)
		if username == "" || !users.Exists(c.Request.Context(), username) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized: user required",
			})
			return
		}
		c.Set(UsernameKey, username)
		c.Next()
	}
}

// resolveUsername prefers the header over the body. The body is only read
// when the header is absent and is restored afterwards so handlers can
// still bind it; a missing or unparseable body counts as an empty object.
func resolveUsername(c *gin.Context) string {
	if v := c.GetHeader("x-username"); v != "" {
		return v
	}
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	var body struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Username
}
