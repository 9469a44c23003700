package main

import (
	"medicinna/internal/jwttoken"
	authmw "medicinna/pkg/platform/middleware/auth"
)

// tokenValidator adapts the jwttoken service to the middleware's validator
// interface so the middleware package stays free of JWT specifics.
type tokenValidator struct {
	tokens *jwttoken.Service
}

func (v tokenValidator) ValidateToken(tokenString string) (*authmw.TokenClaims, error) {
	claims, err := v.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &authmw.TokenClaims{Login: claims.Subject, Role: claims.Role}, nil
}
