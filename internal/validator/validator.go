package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError - кастомный тип ошибки с картой "поле" -> "сообщение".
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	errMsgs := make([]string, 0, len(fields))
	for _, field := range fields {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, e.Errors[field]))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator - обертка над go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях об ошибках используем имена из json-тегов (camelCase),
	// для query-параметров без json-тега берем form-тег.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal проверяется как число (min/max/gt...)
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate выполняет валидацию структуры.
// Если есть ошибки, возвращает *ValidationError со всеми нарушениями.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// например, передали не структуру
		return err
	}

	customErrors := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		customErrors[fieldPath(fe)] = v.getErrorMessage(fe)
	}

	return &ValidationError{Errors: customErrors}
}

// Engine отдает исходный go-playground валидатор (нужен для подключения к gin)
func (v *Validator) Engine() *validator.Validate {
	return v.validate
}

// fieldPath: "CreateVoteRequest.voteeId" -> "voteeId".
// Для встроенных структур (PaginationQuery) имя встроенного типа тоже убирается.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	parts := strings.Split(ns, ".")
	if len(parts) <= 1 {
		return fe.Field()
	}
	parts = parts[1:]
	out := parts[:0]
	for _, p := range parts {
		if p == "PaginationQuery" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, ".")
}

func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at least %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at most %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s items/characters long", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return "Must be a valid URL"
	case "nefield":
		return fmt.Sprintf("Must differ from %s", lowerFirst(fe.Param()))
	case "gtfield":
		return fmt.Sprintf("Must be after %s", lowerFirst(fe.Param()))
	case "user-role":
		return "Must be one of: USER, MODERATOR, ADMIN"
	case "vote-type":
		return "Must be one of: FREE, PAID"
	case "media-status":
		return "Must be one of: PROCESSING, COMPLETED, FAILED"
	case "gender":
		return "Must be one of: Male, Female, Non-binary"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}

// lowerFirst: имя Go-поля из параметра тега -> имя в JSON ("VoterID" -> "voterId")
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, "ID") {
		s = strings.TrimSuffix(s, "ID") + "Id"
	}
	return strings.ToLower(s[:1]) + s[1:]
}
