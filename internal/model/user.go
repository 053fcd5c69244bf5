package model

import "time"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTutor   Role = "TUTOR"
	RoleAdmin   Role = "ADMIN"
)

// User represents a row of the users table. Password is stored in plaintext
// and is never written to JSON.
type User struct {
	ID         string    `db:"id" json:"Id"`
	Name       string    `db:"name" json:"Name"`
	Email      string    `db:"email" json:"Email"`
	Password   string    `db:"password" json:"-"`
	Role       Role      `db:"role" json:"Role"`
	Profession *string   `db:"profession" json:"Profession"`
	IsActive   bool      `db:"is_active" json:"IsActive"`
	CreatedAt  time.Time `db:"created_at" json:"CreatedAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"UpdatedAt"`
}
