// Package auth holds hospital and admin account identity plus the
// register/login flows that gate write-sensitive operations.
package auth

import (
	"strings"

	"github.com/google/uuid"

	dErrors "medicinna/pkg/domain-errors"
)

// Role is a closed capability enumeration consulted by authorization code.
// It is not an identity hierarchy.
type Role string

const (
	RoleHospital Role = "hospital"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a role string, defaulting empty input to hospital.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleHospital, RoleAdmin:
		return Role(s), nil
	case "":
		return RoleHospital, nil
	default:
		return "", dErrors.New(dErrors.CodeBadRequest, "unknown role")
	}
}

// User is an account record. Email is the normalized, globally unique login.
type User struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
	HospitalName   string
	Role           Role
}

// NormalizeLogin canonicalizes a login: a bare username gains the
// organizational domain suffix, so "lakeside" and "lakeside@<domain>" are one
// identity. Callers never see both forms.
func NormalizeLogin(username, domain string) string {
	if strings.Contains(username, "@") {
		return username
	}
	return username + "@" + domain
}
