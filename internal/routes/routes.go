package routes

import (
	"net/http"

	"contest_backend/internal/handlers"
	"contest_backend/internal/models"
	"contest_backend/internal/openapi"
	"contest_backend/internal/services/dto"
	"contest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const apiBasePath = "/api/v1"

// RegisterRoutes монтирует все маршруты API в /api/v1 и возвращает реестр,
// из которого строится Swagger-документ.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, registry *openapi.Registry) {
	registerEnums(registry)

	registry.Mount(&ginRouter.RouterGroup, openapi.Route{
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health Check",
		Description: "Reports service and database availability.",
		Tags:        []string{"System"},
		Public:      true,
		Responses: map[int]openapi.Response{
			http.StatusOK:                 {Description: "Service is healthy", Body: dto.HealthResponse{}},
			http.StatusServiceUnavailable: {Description: "Database is unavailable", Body: dto.HealthResponse{}},
		},
		Handler: appHandlers.HealthHandler.Health,
	})

	api := ginRouter.Group(apiBasePath)
	registry.Mount(api, userRoutes(appHandlers.UserHandler)...)
	registry.Mount(api, profileRoutes(appHandlers.ProfileHandler)...)
	registry.Mount(api, contestRoutes(appHandlers.ContestHandler)...)
	registry.Mount(api, awardRoutes(appHandlers.AwardHandler)...)
	registry.Mount(api, participationRoutes(appHandlers.ParticipationHandler)...)
	registry.Mount(api, voteRoutes(appHandlers.VoteHandler)...)
	registry.Mount(api, mediaRoutes(appHandlers.MediaHandler)...)
	registry.Mount(api, notificationRoutes(appHandlers.NotificationHandler)...)
}

func registerEnums(registry *openapi.Registry) {
	registry.Enum("user-role", string(models.UserRoleUser), string(models.UserRoleModerator), string(models.UserRoleAdmin))
	registry.Enum("gender", string(models.GenderMale), string(models.GenderFemale), string(models.GenderNonBinary))
	registry.Enum("vote-type", string(models.VoteTypeFree), string(models.VoteTypePaid))
	registry.Enum("media-status", string(models.MediaStatusProcessing), string(models.MediaStatusCompleted), string(models.MediaStatusFailed))
}

// ---------------- описания ответов ----------------

func errorResponse(desc string) openapi.Response {
	return openapi.Response{Description: desc, Body: apperrors.ErrorResponse{}}
}

func listResponses(desc string, page any) map[int]openapi.Response {
	return map[int]openapi.Response{
		http.StatusOK: {Description: desc, Body: page},
	}
}

func createResponses(desc string, body any, extra ...int) map[int]openapi.Response {
	r := map[int]openapi.Response{
		http.StatusCreated: {Description: desc, Body: body},
	}
	for _, code := range extra {
		r[code] = errorResponse(http.StatusText(code))
	}
	return r
}

func oneResponses(desc, entity string, body any) map[int]openapi.Response {
	return map[int]openapi.Response{
		http.StatusOK:       {Description: desc, Body: body},
		http.StatusNotFound: errorResponse(entity + " not found"),
	}
}

func idParam(entity string) map[string]string {
	return map[string]string{"id": entity + " ID"}
}
