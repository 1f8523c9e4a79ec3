package middleware

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"motolog-api/models"
	"motolog-api/services"
	"motolog-api/utils"
)

var (
	protectedPages = []string{"/dashboard", "/services", "/events"}
	authPages      = []string{"/signin", "/signup"}
	ungatedPaths   = []string{"/api", "/_next/static", "/_next/image", "/favicon.ico"}
)

// SessionGate redirects page requests based on whether a session cookie is present.
// It does not validate the cookie; handlers do that through the auth service.
func SessionGate(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if hasAnyPrefix(path, ungatedPaths) {
			c.Next()
			return
		}

		token, err := c.Cookie(cookieName)
		hasSession := err == nil && token != ""

		if !hasSession && hasAnyPrefix(path, protectedPages) {
			c.Redirect(http.StatusTemporaryRedirect, "/signin?callbackUrl="+url.QueryEscape(path))
			c.Abort()
			return
		}

		if hasSession && hasAnyPrefix(path, authPages) {
			c.Redirect(http.StatusTemporaryRedirect, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalSession stores the signed-in user in the context when the request carries a valid session.
func OptionalSession(auth *services.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.SessionToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		view, err := auth.GetSession(c.Request.Context(), token)
		switch {
		case err == nil:
			setSession(c, view)
		case !errors.Is(err, services.ErrInvalidSession):
			log.Printf("Failed to resolve session: %v", err)
		}

		c.Next()
	}
}

// RequireSession rejects requests that OptionalSession did not authenticate.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_id") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func setSession(c *gin.Context, view *models.SessionView) {
	c.Set("user_id", view.User.ID)
	c.Set("user_email", view.User.Email)
	c.Set("session_id", view.Session.ID)
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
