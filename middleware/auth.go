// auth.go - JWT authentication middleware
//
// Authentication Flow:
// 1. Extract bearer token from Authorization header
// 2. Validate token signature and expiration
// 3. Resolve the subject claim to a user row
// 4. Store the user in context for handlers

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"strings"  // String operations (for header parsing)

	"go-health-backend/auth"   // Token resolution
	"go-health-backend/models" // User model

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM
)

// userKey is the context key the authenticated user is stored under.
const userKey = "current_user"

// RequireAuth returns a Gin middleware that validates the bearer token and
// loads the authenticated user. Aborts with 401 on any failure: missing or
// malformed header, invalid/expired token, or unknown subject.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract Authorization header
		header := c.GetHeader("Authorization")                     // Get Authorization header
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"}) // Return 401 Unauthorized
			return
		}

		// STEP 2: Resolve the token to a user ID
		tokenStr := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
		userID, err := auth.ResolveToken(tokenStr)        // Validate signature, expiry, subject
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"}) // Return 401 Unauthorized
			return
		}

		// STEP 3: Load the user row so handlers get a resolved user, not just an ID
		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set(userKey, &user) // Store user in Gin context
		c.Next()              // Continue to next handler (authentication successful)
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) *models.User {
	user, _ := c.MustGet(userKey).(*models.User)
	return user
}
