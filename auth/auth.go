// auth.go - Password hashing and JWT issue/resolve, consolidated in one place

package auth // Declares the package name

import ( // Import required packages
	"errors"  // For sentinel errors
	"strconv" // For user ID <-> string conversion
	"time"    // For token expiration

	"go-health-backend/config" // Project config (for JWT secret)

	"github.com/golang-jwt/jwt/v5" // JWT library
	"golang.org/x/crypto/bcrypt"   // Password hashing
)

// TokenTTL is the validity window of an issued access token.
const TokenTTL = 30 * time.Minute

// ErrInvalidToken covers every token failure: bad signature, wrong signing
// method, expiry, or a subject claim that is not a user ID.
var ErrInvalidToken = errors.New("invalid or expired token")

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost) // Hash password
	return string(hash), err
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil // Compare hash
}

// GenerateToken issues a signed HS256 token with the user ID as subject.
func GenerateToken(userID uint) (string, error) {
	cfg := config.Load()                                              // Load config for JWT secret
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{ // Create JWT token
		"sub": strconv.FormatUint(uint64(userID), 10), // Subject is the user ID
		"exp": time.Now().Add(TokenTTL).Unix(),        // Set expiration (30 minutes)
	})
	return token.SignedString([]byte(cfg.JWTSecret)) // Sign token
}

// ResolveToken validates a token string and returns the embedded user ID.
// Returns ErrInvalidToken on any failure.
func ResolveToken(tokenStr string) (uint, error) {
	cfg := config.Load()                                                            // Load config for JWT secret
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) { // Parse JWT
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok { // Reject non-HMAC tokens
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil // Provide secret key for validation
	})
	if err != nil || !token.Valid { // If token is invalid or expired
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims) // Extract claims
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string) // Subject carries the user ID
	if !ok {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 64) // Parse back to uint
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(userID), nil
}
