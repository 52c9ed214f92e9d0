package entities

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	UserType     UserType
	CreatedAt    time.Time
}

type UserType string

const (
	UserAdmin      UserType = "admin"
	UserSupervisor UserType = "supervisor"
	UserCapturist  UserType = "capturist"
)

func (t UserType) String() string {
	return string(t)
}

type UserModify struct {
	Username *string
	Password *string
	UserType *UserType
}

// Session is what a successful login hands back to the frontend.
type Session struct {
	Token    string
	UserType UserType
}
