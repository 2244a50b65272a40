package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"contest_backend/internal/logger"
	"contest_backend/internal/middleware"
	"contest_backend/internal/validator"
	"contest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var pathParamRe = regexp.MustCompile(`\{([^}/]+)\}`)

type mounted struct {
	Route
	fullPath string
}

// Registry хранит таблицу маршрутов, регистрирует их в gin и строит по ней документацию
type Registry struct {
	validator *validator.Validator
	routes    []mounted
	enums     map[string][]any
	info      Info
}

type Info struct {
	Title       string
	Description string
	Version     string
	BasePath    string
}

func NewRegistry(v *validator.Validator, info Info) *Registry {
	return &Registry{
		validator: v,
		enums:     make(map[string][]any),
		info:      info,
	}
}

// Enum связывает кастомное правило валидатора со списком допустимых значений для документации
func (r *Registry) Enum(tag string, values ...string) {
	list := make([]any, 0, len(values))
	for _, v := range values {
		list = append(list, v)
	}
	r.enums[tag] = list
}

func (r *Registry) Routes() []Route {
	out := make([]Route, 0, len(r.routes))
	for _, m := range r.routes {
		out = append(out, m.Route)
	}
	return out
}

// Mount регистрирует маршруты в группе. Path-параметры регистрируются
// позиционно (:p0, :p1, ...) и переименовываются в объявленные имена
// перед вызовом обработчика, поэтому /x/{id}/a и /x/{userId}/b не конфликтуют в дереве gin.
func (r *Registry) Mount(group *gin.RouterGroup, routes ...Route) {
	for _, rt := range routes {
		ginPath, names := toGinPath(rt.Path)

		chain := []gin.HandlerFunc{renameParams(names)}
		if !rt.Public {
			chain = append(chain, middleware.AuthMiddleware())
			if rt.Permission != "" {
				chain = append(chain, middleware.RequirePermission(rt.Permission))
			}
		}
		chain = append(chain, r.bind(rt), rt.Handler)

		group.Handle(rt.Method, ginPath, chain...)
		r.routes = append(r.routes, mounted{
			Route:    rt,
			fullPath: joinPaths(group.BasePath(), rt.Path),
		})
	}
}

func toGinPath(path string) (string, []string) {
	var names []string
	ginPath := pathParamRe.ReplaceAllStringFunc(path, func(m string) string {
		names = append(names, m[1:len(m)-1])
		return fmt.Sprintf(":p%d", len(names)-1)
	})
	return ginPath, names
}

func renameParams(names []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for i := range c.Params {
			var idx int
			if _, err := fmt.Sscanf(c.Params[i].Key, "p%d", &idx); err == nil && idx < len(names) {
				c.Params[i].Key = names[idx]
			}
		}
		c.Next()
	}
}

func joinPaths(base, rel string) string {
	if rel == "" || rel == "/" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(rel, "/")
}

// bind привязывает и валидирует query/body маршрута; любая ошибка - 422
func (r *Registry) bind(rt Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if rt.Query != nil {
			q := reflect.New(reflect.TypeOf(rt.Query)).Interface()
			if err := c.ShouldBindQuery(q); err != nil {
				logger.CtxWarn(ctx, "Failed to bind query params", "error", err, "path", c.Request.URL.Path)
				apperrors.HandleError(c, apperrors.ValidationError(queryErrorDetails(reflect.TypeOf(rt.Query), c.Request.URL.Query())))
				return
			}
			if !r.validate(c, q) {
				return
			}
			c.Set(queryKey, q)
		}

		proto, form := rt.Body, false
		if rt.Form != nil {
			proto, form = rt.Form, true
		}
		if proto != nil {
			b := reflect.New(reflect.TypeOf(proto)).Interface()
			var err error
			if form {
				err = c.ShouldBindWith(b, binding.FormMultipart)
			} else {
				err = c.ShouldBindJSON(b)
			}
			// пустое тело проверяется валидатором (required-поля)
			if err != nil && !errors.Is(err, io.EOF) {
				logger.CtxWarn(ctx, "Failed to bind request body", "error", err, "path", c.Request.URL.Path)
				apperrors.HandleError(c, apperrors.ValidationError(bindErrorDetails(err)))
				return
			}
			if !r.validate(c, b) {
				return
			}
			c.Set(bodyKey, b)
		}

		c.Next()
	}
}

func (r *Registry) validate(c *gin.Context, obj any) bool {
	err := r.validator.Validate(obj)
	if err == nil {
		return true
	}

	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		logger.CtxWarn(c.Request.Context(), "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		return false
	}

	logger.CtxWithError(c.Request.Context(), "Internal validator error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
	return false
}

func bindErrorDetails(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string]string{typeErr.Field: "Expected " + jsonTypeName(typeErr.Type)}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return map[string]string{"body": "Malformed JSON"}
	}
	if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
		return map[string]string{"body": "Expected multipart/form-data"}
	}
	return map[string]string{"body": err.Error()}
}

// queryErrorDetails находит query-параметр, который не приводится к типу
// своего поля, и возвращает ошибку под его именем (тег form)
func queryErrorDetails(t reflect.Type, values url.Values) map[string]string {
	if name, kind, ok := badQueryField(t, values); ok {
		return map[string]string{name: "Expected " + kind}
	}
	return map[string]string{"query": "Invalid query parameters"}
}

func badQueryField(t reflect.Type, values url.Values) (string, string, bool) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if name, kind, ok := badQueryField(f.Type, values); ok {
				return name, kind, true
			}
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			continue
		}
		for _, raw := range values[name] {
			if !parsesAs(f.Type, raw) {
				return name, jsonTypeName(f.Type), true
			}
		}
	}
	return "", "", false
}

func parsesAs(t reflect.Type, raw string) bool {
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	var err error
	switch t.Kind() {
	case reflect.Bool:
		_, err = strconv.ParseBool(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, err = strconv.ParseInt(raw, 10, t.Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		_, err = strconv.ParseUint(raw, 10, t.Bits())
	case reflect.Float32, reflect.Float64:
		_, err = strconv.ParseFloat(raw, t.Bits())
	}
	return err == nil
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
