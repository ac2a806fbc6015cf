package middleware

// identity.go holds helpers shared across middleware files.  The rate
// limiter keys buckets partly by caller identity; unauthenticated
// requests all share the "guest" identity.

import "github.com/labstack/echo/v4"

// currentUserID extracts the authenticated identity set by JWTAuth, or
// "guest" when the request carries no valid token.
func currentUserID(c echo.Context) string {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s
	}
	return "guest"
}
