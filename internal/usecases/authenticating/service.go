package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Perfis de acesso
const (
	RoleAdmin  = 1
	RoleViewer = 2
)

type Authenticator interface {
	LoginUser(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	users    map[string]domain.User
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

// NewService carrega os usuários configurados. Usuários sem hash de senha são ignorados.
func NewService(cfg config.Auth) Authenticator {
	users := make(map[string]domain.User, 2)

	add := func(username, hash string, role int) {
		username = handleUsername(username)
		if username == "" || hash == "" {
			return
		}
		users[username] = domain.User{Username: username, PasswordHash: hash, RoleID: role}
	}
	add(cfg.AdminUser, cfg.AdminPasswordHash, RoleAdmin)
	add(cfg.ViewerUser, cfg.ViewerPasswordHash, RoleViewer)

	if len(users) == 0 {
		logrus.Warn("Nenhum usuário configurado, o login ficará indisponível")
	}

	return &Service{
		users:    users,
		secret:   []byte(cfg.Secret),
		tokenTTL: cfg.TokenTTL,
		now:      time.Now,
	}
}

func handleUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *Service) LoginUser(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	username = handleUsername(username)

	user, ok := s.users[username]
	if !ok {
		return "", NewUserAuthError(ErrUserNotFound, apiErrors.ErrInvalidCredentials, username, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, username, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(errors.Wrap(err, "erro ao assinar token"), apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(user domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserName:   user.Username,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
