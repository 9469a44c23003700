package handler

import (
	"strings"

	dErrors "medicinna/pkg/domain-errors"
)

// RegisterRequest is the transport shape for POST /auth/register.
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	HospitalName string `json:"hospital_name"`
	Role         string `json:"role,omitempty"`
}

// Validate checks required fields before the service sees the request.
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "username is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeBadRequest, "password is required")
	}
	if strings.TrimSpace(r.HospitalName) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "hospital_name is required")
	}
	return nil
}

// LoginRequest is the transport shape for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks required fields before the service sees the request.
func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "username is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeBadRequest, "password is required")
	}
	return nil
}
