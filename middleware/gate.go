// Package middleware holds the access gate: small capability checks composed
// per route. Authentication always runs before any other check in a chain.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hammer-backend/auth"
	"hammer-backend/services"
)

// ClaimEmailKey is the gin context key the authenticated email is stored
// under once the Authenticated check passes.
const ClaimEmailKey = "claimEmail"

const (
	msgUnauthorized = "Unauthorized access"
	msgForbidden    = "Forbidden access"
)

// Denial is a failed check: the status and body to answer with.
type Denial struct {
	Status  int
	Message string
}

// Check inspects a request and either lets it through (nil) or denies it.
type Check func(c *gin.Context) *Denial

// Gate runs checks in order and aborts on the first denial.
func Gate(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, check := range checks {
			if d := check(c); d != nil {
				c.AbortWithStatusJSON(d.Status, gin.H{"message": d.Message})
				return
			}
		}
		c.Next()
	}
}

// Authenticated requires a Bearer token. A missing or malformed header is
// 401; a header that is present but carries a bad or expired token is 403,
// matching the behavior callers already depend on.
func Authenticated(tokens *auth.TokenService) Check {
	return func(c *gin.Context) *Denial {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return &Denial{Status: http.StatusUnauthorized, Message: msgUnauthorized}
		}
		email, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return &Denial{Status: http.StatusForbidden, Message: msgForbidden}
		}
		c.Set(ClaimEmailKey, email)
		return nil
	}
}

// AdminOnly requires the authenticated identity to exist and carry the admin
// role. A missing identity is an explicit 403, not a crash.
func AdminOnly(users *services.UserService) Check {
	return func(c *gin.Context) *Denial {
		email := ClaimEmail(c)
		if email == "" {
			return &Denial{Status: http.StatusForbidden, Message: msgForbidden}
		}
		admin, err := users.IsAdmin(email)
		if err != nil || !admin {
			return &Denial{Status: http.StatusForbidden, Message: msgForbidden}
		}
		return nil
	}
}

// OwnsVisitor lets callers list only their own bookings: the visitor query
// parameter must equal the authenticated email.
func OwnsVisitor() Check {
	return func(c *gin.Context) *Denial {
		if c.Query("visitor") != ClaimEmail(c) {
			return &Denial{Status: http.StatusForbidden, Message: msgForbidden}
		}
		return nil
	}
}

// ClaimEmail returns the authenticated email, or "" before authentication.
func ClaimEmail(c *gin.Context) string {
	v, _ := c.Get(ClaimEmailKey)
	email, _ := v.(string)
	return email
}
