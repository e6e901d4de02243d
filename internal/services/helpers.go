package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/google/uuid"
)

// parseID accepts a canonical UUID and rejects anything else before it
// reaches the store.
func parseID(field, raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", domain.ValidationError{Field: field, Msg: "invalid id", Err: err}
	}
	return id.String(), nil
}

func newID() string {
	return uuid.NewString()
}

// storeErr translates a repository error into the domain taxonomy. Anything
// unexpected is logged and hidden behind msg.
func storeErr(ctx context.Context, module, action, resource string, err error, msg string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return domain.NotFoundError{Resource: resource, Err: err}
	case errors.Is(err, repositories.ErrDuplicate):
		return domain.ConflictError{Resource: resource, Msg: "already exists", Err: err}
	}
	utils.LogError(ctx, module, action, err)
	return domain.InternalError{Msg: msg, Err: err}
}

func nowOr(now func() time.Time) time.Time {
	if now != nil {
		return now().UTC()
	}
	return utils.NowUTC()
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationError{Field: field, Msg: "is required"}
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
