package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	// SessionCookie identifies one visitor's flow for the lifetime of the
	// browser session.
	SessionCookie = "campreg_session"
	// SessionKey is the context key the session ID is stored under.
	SessionKey = "session_id"
)

// Session guarantees every request carries a flow session ID, minting a
// session cookie on first contact.
func Session() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(SessionKey, id)

		c.Next()
	}
}
