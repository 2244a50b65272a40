package services

import (
	"errors"

	"contest_backend/internal/repositories"
	"contest_backend/pkg/apperrors"
)

// handleRepoError переводит ошибки репозитория в AppError для сущности domain
func handleRepoError(err error, domain string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.ErrNotFound(err, domain)
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.ErrAlreadyExists(err, domain)
	case errors.Is(err, repositories.ErrForeignKey):
		return apperrors.ErrConflict(err, domain, "Referenced record does not exist")
	default:
		return apperrors.InternalError(err)
	}
}

// ensureExists возвращает 404 с именем сущности, если строки нет
func ensureExists(exists func() (bool, error), domain string) error {
	ok, err := exists()
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !ok {
		return apperrors.ErrNotFound(repositories.ErrNotFound, domain)
	}
	return nil
}
