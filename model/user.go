package model

import "strings"

// User is the marketplace account as seen by the admin console.
type User struct {
	UserID              int64    `json:"userId" alias:"id"`
	Email               string   `json:"email"`
	FullName            string   `json:"fullName" alias:"name,userName"`
	Phone               string   `json:"phone,omitempty" alias:"phoneNumber"`
	Role                string   `json:"role" alias:"roleName"`
	Status              string   `json:"status" alias:"accountStatus"`
	ReasonCode          string   `json:"reasonCode,omitempty"`
	ReasonNote          string   `json:"reasonNote,omitempty"`
	AccountStatusReason string   `json:"accountStatusReason,omitempty"`
	CreatedDate         FlexTime `json:"createdDate" alias:"createdAt"`
}

// LoginRequest for admin login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// BackendLogin is the marketplace login result.
type BackendLogin struct {
	Token string `json:"token" alias:"accessToken,jwt"`
	User  User   `json:"user"`
}

// Session is stored in Redis under the JWT id.
type Session struct {
	UserID       int64  `json:"userId"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	BackendToken string `json:"backendToken"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && strings.EqualFold(s.Role, "admin")
}

type ChangeStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=active suspended deleted"`
	ReasonCode string `json:"reasonCode" validate:"required_unless=Status active"`
	ReasonNote string `json:"reasonNote"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin sub_admin user"`
}

type UserList struct {
	Users   []User     `json:"users"`
	Source  DataSource `json:"source"`
	Warning string     `json:"warning,omitempty"`
}
