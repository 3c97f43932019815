package domain

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
