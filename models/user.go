package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an attorney account that owns cases
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	BarNumber    *string   `json:"bar_number,omitempty"`
	FirmName     *string   `json:"firm_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
