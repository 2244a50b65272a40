package openapi

import (
	"github.com/gin-gonic/gin"
)

// Route - описание одного эндпоинта: из него строится и маршрут gin,
// и операция Swagger-документа.
type Route struct {
	Method      string
	Path        string // параметры в фигурных скобках: /contests/{id}
	Summary     string
	Description string
	Tags        []string

	// Params - описания path-параметров по имени
	Params map[string]string

	// Query, Body и Form - прототипы (значения структур), в новые экземпляры
	// которых диспетчер привязывает запрос перед вызовом Handler
	Query any
	Body  any
	Form  any
	Files []string

	Responses map[int]Response
	Handler   gin.HandlerFunc

	Public     bool
	Permission string
}

type Response struct {
	Description string
	Body        any
}

const (
	queryKey = "openapi.query"
	bodyKey  = "openapi.body"
)

// Query возвращает провалидированные query-параметры текущего маршрута
func Query[T any](c *gin.Context) *T {
	return value[T](c, queryKey)
}

// Body возвращает провалидированное тело (JSON или multipart-форму) текущего маршрута
func Body[T any](c *gin.Context) *T {
	return value[T](c, bodyKey)
}

func value[T any](c *gin.Context, key string) *T {
	v, ok := c.Get(key)
	if !ok {
		return new(T)
	}
	typed, ok := v.(*T)
	if !ok {
		return new(T)
	}
	return typed
}
