package models

// User is one record in the users collection. The password field holds a
// bcrypt hash, never plaintext; it round-trips through the persisted file,
// so responses go through PublicUser to keep the hash out of them.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture"`
}

// PublicUser is the response shape for profile endpoints.
type PublicUser struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}
