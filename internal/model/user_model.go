package model

// User is the signed-in user's profile as returned by the auth
// endpoints, and one row of the admin user listing.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

// IsAdmin reports whether the user may use the admin console.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
