package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents an account holder identified by a chat handle
type User struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Handle    string          `json:"handle" db:"handle"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
