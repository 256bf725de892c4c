package model

import "gorm.io/gorm"

// User is a credential record. Email and Username are unique; the service
// layer compares both case-insensitively and the unique indexes are the final
// authority under concurrent sign-ups.
type User struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Surname      string `gorm:"not null" json:"surname"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"` // derived, never client-supplied
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:'user'" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
}

// PublicUser is the projection returned by auth endpoints. It never exposes
// the password hash or the active flag.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Role     string `json:"role"`
}

func (u *User) Public() PublicUser {
	role := u.Role
	if role == "" {
		role = "user"
	}
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		Surname:  u.Surname,
		Role:     role,
	}
}
