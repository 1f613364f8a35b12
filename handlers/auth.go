// auth.go - Handles user registration and login

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes

	"go-health-backend/auth"   // Password hashing and token issuance
	"go-health-backend/models" // User model

	"github.com/gin-gonic/gin" // Gin web framework
)

type RegisterInput struct { // Struct for registration input
	Email     string `json:"email" binding:"required,email"` // Email (required, must be valid)
	Password  string `json:"password" binding:"required"`    // Password (required)
	FirstName string `json:"first_name"`                     // First name (optional)
	LastName  string `json:"last_name"`                      // Last name (optional)
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required,email"` // Email (required)
	Password string `json:"password" binding:"required"`    // Password (required)
}

// Register creates a new account. Fails with 400 if the email is taken.
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput                          // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
		return
	}

	// Check if a user with this email already exists (case-sensitive, as stored)
	var existing models.User
	if err := h.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"}) // Duplicate email
		return
	}

	hash, err := auth.HashPassword(input.Password) // Hash password
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	user := models.User{ // Create user struct
		Email:     input.Email,
		Password:  hash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := h.DB.Create(&user).Error; err != nil { // Save user to DB
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if DB fails
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"}) // Success response
}

// Login verifies credentials and returns a signed access token.
// The same generic 401 is returned for unknown email and wrong password so
// the response does not leak which accounts exist.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput                             // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
		return
	}
	var user models.User                                                                 // Declare user variable
	if err := h.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {      // Find user by email
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"}) // Return error if not found
		return
	}
	if !auth.CheckPassword(input.Password, user.Password) { // Check password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"}) // Return error if wrong
		return
	}

	token, err := auth.GenerateToken(user.ID) // Issue signed token (sub = user ID, 30 min expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"}) // Return token
}
