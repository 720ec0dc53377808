package model

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	ID           string    `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name" validate:"max=64"`
	LastName     string    `json:"lastName" db:"last_name" validate:"max=64"`
	Email        string    `json:"email" db:"email" validate:"required,email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role" validate:"required,oneof=admin member"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type SignupRequest struct {
	FirstName       string `json:"firstName" validate:"max=64"`
	LastName        string `json:"lastName" validate:"max=64"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

type UpdatePasswordRequest struct {
	PasswordCurrent string `json:"passwordCurrent" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Data   struct {
		User User `json:"user"`
	} `json:"data"`
}

// UpdateMeRequest holds the only fields a user may change on themselves.
type UpdateMeRequest struct {
	FirstName *string `json:"firstName" form:"firstName" validate:"omitempty,max=64"`
	LastName  *string `json:"lastName" form:"lastName" validate:"omitempty,max=64"`
	Avatar    []byte  `json:"-" form:"-"`
}

type Me struct {
	User       User            `json:"user"`
	Financials *UserFinancials `json:"financials,omitempty"`
}

// AuthToken is a signed jwt and the moment it stops being accepted.
type AuthToken struct {
	Token     string
	ExpiresAt time.Time
}
