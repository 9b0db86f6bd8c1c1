package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Usuário configurado por variável de ambiente
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`
}

type Claims struct {
	UserName   string
	UserRoleID int
	jwt.RegisteredClaims
}
