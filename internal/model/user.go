package model

// swagger:model User
type User struct {
	Base
	Username  string `json:"username"`
	Password  string `json:"-"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
