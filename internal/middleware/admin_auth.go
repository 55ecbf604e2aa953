package middleware

import (
	"context"
	"net/http"

	"github.com/campreg/campreg/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	// AdminCookie outlives the browser session so the reporting view stays
	// signed in until an explicit logout.
	AdminCookie = "campreg_admin"
	// AdminCookieMaxAge caps how long a stored credential is honored.
	AdminCookieMaxAge = 30 * 24 * 60 * 60
	// AdminKey is the context key the admin ID is stored under.
	AdminKey = "admin_id"
)

// CredentialReader is the slice of the credential store AdminAuth needs.
type CredentialReader interface {
	Get(ctx context.Context, sessionID string) (*domain.Credential, error)
}

// AdminAuth gates the reporting endpoints: the admin cookie must resolve to a
// stored credential with the admin flag set.
func AdminAuth(credentials CredentialReader) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, err := c.Cookie(AdminCookie)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authentication required"})
			return
		}

		cred, err := credentials.Get(c.Request.Context(), id)
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			return
		}
		if cred == nil || cred.Token == "" || !cred.IsAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authentication required"})
			return
		}

		c.Set(AdminKey, id)
		c.Next()
	}
}
