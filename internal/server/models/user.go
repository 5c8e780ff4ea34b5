package models

import "time"

// User is the persisted account record. PasswordHash holds a bcrypt hash,
// never the plain password. FullName is optional and may be nil.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	FullName     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserView is the public projection of a User returned by the API.
// It never exposes the password hash.
type UserView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// View converts a User into its public projection.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
