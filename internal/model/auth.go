package model

import "github.com/golang-jwt/jwt/v5"

// Staff roles. Identity is vouched for by the intranet gateway; this
// service only enforces role-based access.
const (
	RoleStaff    = "staff"
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

// StaffClaims are JWT claims for staff tokens
type StaffClaims struct {
	StaffID string `json:"staffId"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for token issuance
type LoginRequest struct {
	StaffID string `json:"staffId"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token   string `json:"token"`
	StaffID string `json:"staffId"`
	Role    string `json:"role"`
}
