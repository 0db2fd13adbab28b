// Package models contains data structures for the application's domain models.
package models

import "time"

// User is a registered account. Password holds the bcrypt hash and is
// serialized in responses for parity with the original API contract.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"password,omitempty"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}
