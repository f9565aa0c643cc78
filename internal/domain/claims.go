package domain

import "github.com/golang-jwt/jwt/v5"

// Claims do token emitido para o operador da API
type Claims struct {
	UserEmail string `json:"email"`
	UserRole  string `json:"role"`
	jwt.RegisteredClaims
}

const RoleAdmin = "admin"
