package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Provider string `json:"provider"`
}

type UserService struct {
	Users UserStore
	Views ViewCache
	Now   func() time.Time
}

func (s UserService) views() ViewCache {
	if s.Views != nil {
		return s.Views
	}
	return noViews{}
}

func (s UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	var cached []models.User
	slot, hit := s.views().Load(ctx, "users", "all", &cached)
	if hit {
		return cached, nil
	}
	list, err := s.Users.List(ctx)
	if err != nil {
		return nil, storeErr(ctx, "users", "list", "user", err, "failed to list users")
	}
	s.views().Store(ctx, slot, list)
	return list, nil
}

func (s UserService) GetUser(ctx context.Context, id string) (models.User, error) {
	userID, err := parseID("id", id)
	if err != nil {
		return models.User{}, err
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, storeErr(ctx, "users", "get", "user", err, "failed to load user")
	}
	return u, nil
}

// CreateUser hashes the password with bcrypt. OAuth users (provider set)
// may be created without one.
func (s UserService) CreateUser(ctx context.Context, in CreateUserInput) (models.User, error) {
	if err := required("name", in.Name); err != nil {
		return models.User{}, err
	}
	email := utils.NormalizeEmail(in.Email)
	if !utils.LooksLikeEmail(email) {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "invalid email"}
	}
	role := models.RoleUser
	if raw := strings.TrimSpace(in.Role); raw != "" {
		role = models.UserRole(raw)
		if !role.Valid() {
			return models.User{}, domain.ValidationError{Field: "role", Msg: "invalid role"}
		}
	}
	provider := strings.TrimSpace(in.Provider)
	if provider == "" {
		provider = "credentials"
	}

	var hash string
	if in.Password != "" || provider == "credentials" {
		if len(in.Password) < minPasswordLength {
			return models.User{}, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"}
		}
		b, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.LogError(ctx, "users", "create", err)
			return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
		}
		hash = string(b)
	}

	now := nowOr(s.Now)
	u := models.User{
		ID:           newID(),
		Name:         utils.NormalizeSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Image:        strings.TrimSpace(in.Image),
		Role:         role,
		Provider:     provider,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return models.User{}, storeErr(ctx, "users", "create", "user", err, "failed to create user")
	}
	utils.LogEvent(ctx, "users", "create", "user_id="+u.ID+" role="+string(role))
	s.views().InvalidatePaths(ctx, "/users")
	return u, nil
}

func (s UserService) UpdateRole(ctx context.Context, id, role string) (models.User, error) {
	userID, err := parseID("id", id)
	if err != nil {
		return models.User{}, err
	}
	next := models.UserRole(strings.TrimSpace(role))
	if !next.Valid() {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "invalid role"}
	}
	if err := s.Users.UpdateRole(ctx, userID, next, nowOr(s.Now)); err != nil {
		return models.User{}, storeErr(ctx, "users", "update_role", "user", err, "failed to update role")
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, storeErr(ctx, "users", "update_role", "user", err, "failed to load user")
	}
	utils.LogEvent(ctx, "users", "update_role", "user_id="+userID+" role="+string(next))
	s.views().InvalidatePaths(ctx, "/users", "/users/"+userID)
	return u, nil
}

func (s UserService) DeleteUser(ctx context.Context, id string) error {
	userID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.Users.Delete(ctx, userID); err != nil {
		return storeErr(ctx, "users", "delete", "user", err, "failed to delete user")
	}
	s.views().InvalidatePaths(ctx, "/users", "/users/"+userID)
	return nil
}

// EnsureAdmin creates the bootstrap admin when no user has that email yet.
func (s UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil
	}
	_, err := s.Users.GetByEmail(ctx, utils.NormalizeEmail(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return storeErr(ctx, "users", "ensure_admin", "user", err, "failed to look up admin")
	}
	_, err = s.CreateUser(ctx, CreateUserInput{
		Name:     "Administrator",
		Email:    email,
		Password: password,
		Role:     string(models.RoleAdmin),
	})
	return err
}
