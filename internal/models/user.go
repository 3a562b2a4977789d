package models

import (
	"time"
)

// Code types stored in verification_codes.code_type.
const (
	CodeTypeRegistration  = "registration"
	CodeTypePasswordReset = "password_reset"
)

// User represents a registered customer account.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex" json:"email"`
	Phone        string `json:"phone"`
	FullName     string `json:"full_name"`
	PasswordHash string `json:"-"`
	IsVerified   bool   `json:"is_verified"`
	Role         string `gorm:"default:user" json:"role"`
}

// VerificationCode is a single-use numeric credential emailed to a user.
//
// Multiple codes per email may coexist; lookups always take the newest
// unused row matching email, code and type. A used or expired row never
// authorizes anything again.
type VerificationCode struct {
	BaseModel
	Email     string     `gorm:"index" json:"email"`
	Code      string     `json:"code"`
	CodeType  string     `gorm:"index" json:"code_type"`
	ExpiresAt time.Time  `json:"expires_at"`
	Used      bool       `json:"used"`
	UsedAt    *time.Time `json:"used_at"`
}
