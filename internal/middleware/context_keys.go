package middleware

import "github.com/gin-gonic/gin"

// userEmailKey is the key used to store the caller's advisory identity in the
// Gin context. Using a custom type prevents collisions.
const userEmailKey = contextKey("userEmail")

// GetUserEmailFromContext retrieves the caller's email from the Gin context.
// It returns the email and a boolean indicating if it was found.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	emailVal, exists := c.Get(string(userEmailKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(userEmailKey)
		if ctxVal != nil {
			return ctxVal.(string), true
		}
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok {
		return "", false
	}

	return email, true
}
