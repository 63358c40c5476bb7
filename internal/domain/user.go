package domain

const DefaultAvatarColor = "bg-indigo-600"

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Login         string `json:"login"`
	Password      string `json:"password"`
	Email         string `json:"email"`
	IsActive      bool   `json:"isActive"`
	IsAdmin       bool   `json:"isAdmin"`
	IsRenovations bool   `json:"isRenovations"`
	AvatarColor   string `json:"avatarColor"`
}
