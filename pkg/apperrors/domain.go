package apperrors

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// domain - имя сущности ("contest", "user"...), попадает в сообщение.
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, fmt.Sprintf("%s not found", entityTitle(domain)), http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error, domain string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, fmt.Sprintf("%s already exists", entityTitle(domain)), http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - операция не имеет смысла в текущем состоянии (422)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusUnprocessableEntity)
}

// ErrStorage - ошибка файлового хранилища (502)
func ErrStorage(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "File storage is unavailable", http.StatusBadGateway)
}

// --- Предопределенные ошибки ---

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrMissingToken = New(
	CodeUnauthorized,
	"auth",
	"Authorization header missing or invalid",
	http.StatusUnauthorized,
)

// ErrSelfVote - голос за самого себя
var ErrSelfVote = New(
	CodeValidationFailed,
	"vote",
	"Voter and votee must differ",
	http.StatusUnprocessableEntity,
).WithDetails(map[string]string{"voteeId": "Must differ from voterId"})

// ErrInvalidContestDates - дата окончания не позже даты начала
var ErrInvalidContestDates = New(
	CodeValidationFailed,
	"contest",
	"Contest end date must be after start date",
	http.StatusUnprocessableEntity,
).WithDetails(map[string]string{"endDate": "Must be after startDate"})

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"media",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"media",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

func entityTitle(domain string) string {
	if domain == "" {
		return "Resource"
	}
	return strings.ToUpper(domain[:1]) + domain[1:]
}
