// user.go - Defines the User model for the database

package models // Declares the package name

type User struct { // User struct represents a registered account
	ID        uint   `gorm:"primaryKey" json:"id"`         // Unique user ID (primary key)
	Email     string `gorm:"unique;not null" json:"email"` // User's email (must be unique, cannot be null)
	Password  string `gorm:"not null" json:"-"`            // Hashed password (never serialized)
	FirstName string `json:"first_name"`                   // Optional first name
	LastName  string `json:"last_name"`                    // Optional last name
}
