package models

import (
	"github.com/golang-jwt/jwt"
)

const (
	RoleCitizen        = "citizen"
	RoleAdmin          = "admin"
	RoleFinanceOfficer = "finance_officer"
	RoleAuditor        = "auditor"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// WithoutPassword returns a copy safe to serialize in API responses.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

func (u User) Validate() []FieldError {
	var details []FieldError
	details = required(details, "username", u.Username)
	details = required(details, "password", u.Password)
	details = required(details, "fullName", u.FullName)
	details = required(details, "email", u.Email)
	details = required(details, "phone", u.Phone)
	details = required(details, "role", u.Role)
	details = oneOf(details, "role", u.Role, RoleCitizen, RoleAdmin, RoleFinanceOfficer, RoleAuditor)
	return details
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
}

func (u UserUpdate) Validate() []FieldError {
	var details []FieldError
	if u.Role != nil {
		details = oneOf(details, "role", *u.Role, RoleCitizen, RoleAdmin, RoleFinanceOfficer, RoleAuditor)
	}
	return details
}

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
