package routes

import (
	"net/http"

	"contest_backend/internal/handlers"
	"contest_backend/internal/openapi"
	"contest_backend/internal/services/dto"
)

func mediaRoutes(h *handlers.MediaHandler) []openapi.Route {
	tags := []string{"Media"}
	return []openapi.Route{
		{
			Method:      http.MethodGet,
			Path:        "/media",
			Summary:     "Get Media",
			Description: "Get paginated list of media.",
			Tags:        tags,
			Query:       dto.ListMediaQuery{},
			Responses:   listResponses("Paginated media", dto.Paginated[dto.MediaResponse]{}),
			Handler:     h.ListMedia,
		},
		{
			Method:      http.MethodPost,
			Path:        "/media",
			Summary:     "Create Media",
			Description: "Register media that is already stored.",
			Tags:        tags,
			Body:        dto.CreateMediaRequest{},
			Responses:   createResponses("Created media", dto.MediaResponse{}, http.StatusNotFound),
			Handler:     h.CreateMedia,
		},
		{
			Method:      http.MethodPost,
			Path:        "/media/upload",
			Summary:     "Upload Media",
			Description: "Upload a file for a profile. The media stays in PROCESSING until its thumbnail is built.",
			Tags:        tags,
			Form:        dto.UploadMediaRequest{},
			Files:       []string{"file"},
			Responses: createResponses("Uploaded media", dto.MediaResponse{},
				http.StatusNotFound, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType),
			Handler: h.UploadMedia,
		},
		{
			Method:      http.MethodGet,
			Path:        "/media/{id}",
			Summary:     "Get Media Item",
			Description: "Get a specific media item by ID.",
			Tags:        tags,
			Params:      idParam("Media"),
			Responses:   oneResponses("Media", "Media", dto.MediaResponse{}),
			Handler:     h.GetMedia,
		},
		{
			Method:      http.MethodPatch,
			Path:        "/media/{id}",
			Summary:     "Update Media",
			Description: "Update a media item by ID.",
			Tags:        tags,
			Params:      idParam("Media"),
			Body:        dto.UpdateMediaRequest{},
			Responses:   oneResponses("Updated media", "Media", dto.MediaResponse{}),
			Handler:     h.UpdateMedia,
		},
		{
			Method:      http.MethodDelete,
			Path:        "/media/{id}",
			Summary:     "Delete Media",
			Description: "Delete a media item and its stored object.",
			Tags:        tags,
			Params:      idParam("Media"),
			Responses:   oneResponses("Deleted media", "Media", dto.MediaResponse{}),
			Handler:     h.DeleteMedia,
		},
	}
}
