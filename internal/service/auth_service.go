package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/apperr"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

var (
	// ErrInvalidToken is returned for malformed, forged or expired tokens
	ErrInvalidToken = errors.New("invalid or expired token")
)

// tokenTTL matches one shift cycle; staff re-authenticate daily through
// the intranet gateway anyway.
const tokenTTL = 24 * time.Hour

// AuthService issues and validates staff JWTs. The intranet gateway
// vouches for identity upstream; this service only encodes it and
// enforces roles.
type AuthService struct {
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
	}
}

// Login issues a signed staff token
func (s *AuthService) Login(req *model.LoginRequest) (*model.LoginResponse, error) {
	if req == nil || req.StaffID == "" {
		return nil, apperr.Invalid("staffId", "must not be empty")
	}

	role := req.Role
	if role == "" {
		role = model.RoleStaff
	}
	if role != model.RoleStaff && role != model.RoleReviewer && role != model.RoleAdmin {
		return nil, apperr.Invalid("role", "must be staff, reviewer or admin")
	}

	claims := &model.StaffClaims{
		StaffID: req.StaffID,
		Name:    req.Name,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		StaffID: req.StaffID,
		Role:    role,
	}, nil
}

// ValidateToken validates a staff JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.StaffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.StaffClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.StaffClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// RoleAtLeast reports whether the held role meets the required one.
// Admin covers reviewer, reviewer covers staff.
func RoleAtLeast(held, required string) bool {
	rank := map[string]int{
		model.RoleStaff:    1,
		model.RoleReviewer: 2,
		model.RoleAdmin:    3,
	}
	h, okH := rank[held]
	r, okR := rank[required]
	if !okH || !okR {
		return false
	}
	return h >= r
}
