package model

import "time"

// Bounds the presentation layer enforces on GenerationOptions.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 24
	MinQuantity       = 1
	MaxQuantity       = 20

	DefaultPasswordLength = 12
	DefaultQuantity       = 5
)

// GenerationOptions configures one batch.
type GenerationOptions struct {
	PasswordLength   int
	Quantity         int
	IncludeNumbers   bool
	IncludeSymbols   bool
	IncludeUppercase bool
}

// DefaultOptions returns 5 items of 12 characters with every class enabled.
func DefaultOptions() GenerationOptions {
	return GenerationOptions{
		PasswordLength:   DefaultPasswordLength,
		Quantity:         DefaultQuantity,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
		IncludeUppercase: true,
	}
}

// GeneratedItem is one username/password pair of a batch.
type GeneratedItem struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// FieldRole names which field of an item a copy refers to.
type FieldRole string

const (
	RoleUsername FieldRole = "username"
	RolePassword FieldRole = "password"
)

// Value returns the field of item selected by r.
func (r FieldRole) Value(item GeneratedItem) (string, bool) {
	switch r {
	case RoleUsername:
		return item.Username, true
	case RolePassword:
		return item.Password, true
	default:
		return "", false
	}
}

// Notification is a transient message for the presentation layer.
// ItemID and Role are set only for single-field copies.
type Notification struct {
	Title       string
	Description string
	Duration    time.Duration
	ItemID      string
	Role        FieldRole
}

// GenerateRequest represents a batch generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Quantity  int   `json:"quantity"`
	Uppercase *bool `json:"uppercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// BatchResponse represents the current result set.
type BatchResponse struct {
	Items      []GeneratedItem `json:"items"`
	Strength   string          `json:"strength,omitempty"`
	Generating bool            `json:"generating"`
}
