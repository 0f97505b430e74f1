// Package models contains the domain records shared across the application.
package models

// User represents an account in the authentication backend. The plain
// Password field is transient: it is carried only between a form and the
// user gateway and is never persisted as-is.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `gorm:"-" json:"-"`
	PasswordHash string `json:"-"`
}

// Author is the by-value user reference embedded in posts and comments.
// It is a copy taken at write time, not a live link to the users collection.
type Author struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Author returns the embeddable snapshot of the user.
func (u User) Author() Author {
	return Author{
		ID:        u.ID,
		Email:     u.Email,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
	}
}
