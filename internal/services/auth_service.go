package services

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

var errBadCredentials = domain.UnauthorizedError{Msg: "invalid email or password"}

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// AuthService issues and verifies HS256 admin tokens.
type AuthService struct {
	Users  UserStore
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return defaultTokenTTL
}

// Authenticate checks email + password and returns the user on success.
func (s AuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, domain.ValidationError{Msg: "email and password are required"}
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.User{}, errBadCredentials
		}
		return models.User{}, storeErr(ctx, "auth", "login", "user", err, "failed to load user")
	}
	if u.PasswordHash == "" {
		return models.User{}, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, errBadCredentials
	}
	return u, nil
}

func (s AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}
	token, err := s.IssueToken(u)
	if err != nil {
		utils.LogError(ctx, "auth", "login", err)
		return LoginResult{}, domain.InternalError{Msg: "failed to create token", Err: err}
	}
	utils.LogEvent(ctx, "auth", "login", "user_id="+u.ID)
	return LoginResult{Token: token, User: u}, nil
}

func (s AuthService) IssueToken(u models.User) (string, error) {
	now := nowOr(s.Now)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"role":    string(u.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl()).Unix(),
	})
	return token.SignedString(s.Secret)
}

// ParseToken verifies signature and expiry and returns the caller identity.
func (s AuthService) ParseToken(raw string) (domain.RequestContext, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.Now != nil {
		opts = append(opts, jwt.WithTimeFunc(s.Now))
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, opts...)
	if err != nil {
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "invalid token"}
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "invalid token"}
	}
	return domain.RequestContext{UserID: userID, Role: role}, nil
}
