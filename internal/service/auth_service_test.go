package service

import (
	"errors"
	"testing"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/apperr"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

func TestLoginRoundTrip(t *testing.T) {
	svc := NewAuthService("test-secret")

	resp, err := svc.Login(&model.LoginRequest{
		StaffID: "staff-42",
		Name:    "Nadia",
		Role:    model.RoleReviewer,
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.StaffID != "staff-42" || resp.Role != model.RoleReviewer {
		t.Errorf("expected staff-42/reviewer, got %s/%s", resp.StaffID, resp.Role)
	}

	claims, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.StaffID != "staff-42" {
		t.Errorf("expected staffId staff-42, got %q", claims.StaffID)
	}
	if claims.Name != "Nadia" {
		t.Errorf("expected name Nadia, got %q", claims.Name)
	}
	if claims.Role != model.RoleReviewer {
		t.Errorf("expected role reviewer, got %q", claims.Role)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected issued and expiry timestamps")
	}
	if !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Error("expected expiry after issuance")
	}
}

func TestLoginDefaultsToStaffRole(t *testing.T) {
	svc := NewAuthService("test-secret")

	resp, err := svc.Login(&model.LoginRequest{StaffID: "staff-7"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Role != model.RoleStaff {
		t.Errorf("expected default role staff, got %q", resp.Role)
	}
}

func TestLoginValidation(t *testing.T) {
	svc := NewAuthService("test-secret")

	if _, err := svc.Login(nil); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for nil request, got %v", err)
	}
	if _, err := svc.Login(&model.LoginRequest{}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for empty staffId, got %v", err)
	}
	if _, err := svc.Login(&model.LoginRequest{StaffID: "staff-7", Role: "owner"}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for unknown role, got %v", err)
	}
}

func TestValidateTokenRejectsForgeries(t *testing.T) {
	svc := NewAuthService("test-secret")

	resp, err := svc.Login(&model.LoginRequest{StaffID: "staff-42"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Same token, different signing key.
	other := NewAuthService("other-secret")
	if _, err := other.ValidateToken(resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong key, got %v", err)
	}

	if _, err := svc.ValidateToken("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for garbage, got %v", err)
	}

	tampered := resp.Token[:len(resp.Token)-2] + "xx"
	if _, err := svc.ValidateToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		held     string
		required string
		want     bool
	}{
		{model.RoleStaff, model.RoleStaff, true},
		{model.RoleStaff, model.RoleReviewer, false},
		{model.RoleStaff, model.RoleAdmin, false},
		{model.RoleReviewer, model.RoleStaff, true},
		{model.RoleReviewer, model.RoleReviewer, true},
		{model.RoleReviewer, model.RoleAdmin, false},
		{model.RoleAdmin, model.RoleStaff, true},
		{model.RoleAdmin, model.RoleAdmin, true},
		{"intern", model.RoleStaff, false},
		{model.RoleAdmin, "owner", false},
	}

	for _, tt := range tests {
		if got := RoleAtLeast(tt.held, tt.required); got != tt.want {
			t.Errorf("RoleAtLeast(%q, %q): expected %v, got %v", tt.held, tt.required, got, tt.want)
		}
	}
}
