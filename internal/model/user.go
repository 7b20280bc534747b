package model

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleEditor UserRole = "EDITOR"
	RoleDoctor UserRole = "DOCTOR"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleDoctor:
		return true
	}
	return false
}

type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusInactive UserStatus = "INACTIVE"
)

// User is the persisted account record. The bcrypt hash is stored under
// the "password" attribute and is never serialized to JSON.
type User struct {
	UserID       string     `dynamodbav:"userId" json:"userId"`
	Email        string     `dynamodbav:"email" json:"email"`
	Name         string     `dynamodbav:"name" json:"name"`
	Role         UserRole   `dynamodbav:"role" json:"role"`
	Status       UserStatus `dynamodbav:"status" json:"status"`
	PasswordHash string     `dynamodbav:"password" json:"-"`
	LastLogin    *time.Time `dynamodbav:"lastLogin" json:"lastLogin"`
	CreatedAt    time.Time  `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `dynamodbav:"updatedAt" json:"updatedAt"`
}

// UserSummary is the admin list projection. The password attribute is
// excluded at the query level, not just at serialization time.
type UserSummary struct {
	ID        string     `dynamodbav:"userId" json:"id"`
	Name      string     `dynamodbav:"name" json:"name"`
	Email     string     `dynamodbav:"email" json:"email"`
	Role      UserRole   `dynamodbav:"role" json:"role"`
	Status    UserStatus `dynamodbav:"status" json:"status"`
	LastLogin *time.Time `dynamodbav:"lastLogin" json:"lastLogin"`
}
