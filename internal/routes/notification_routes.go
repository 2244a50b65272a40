package routes

import (
	"net/http"

	"contest_backend/internal/handlers"
	"contest_backend/internal/openapi"
	"contest_backend/internal/services/dto"
)

func notificationRoutes(h *handlers.NotificationHandler) []openapi.Route {
	tags := []string{"Notifications"}
	return []openapi.Route{
		{
			Method:      http.MethodGet,
			Path:        "/notifications",
			Summary:     "Get Notifications",
			Description: "Get paginated list of notifications for the authenticated user.",
			Tags:        tags,
			Query:       dto.ListNotificationsQuery{},
			Responses:   listResponses("Paginated notifications", dto.Paginated[dto.NotificationResponse]{}),
			Handler:     h.ListNotifications,
		},
		{
			Method:      http.MethodPost,
			Path:        "/notifications",
			Summary:     "Create Notification",
			Description: "Create a new notification.",
			Tags:        tags,
			Body:        dto.CreateNotificationRequest{},
			Responses:   createResponses("Created notification", dto.NotificationResponse{}, http.StatusNotFound),
			Handler:     h.CreateNotification,
		},
		{
			Method:      http.MethodGet,
			Path:        "/notifications/{id}",
			Summary:     "Get Notification",
			Description: "Get a specific notification by ID.",
			Tags:        tags,
			Params:      idParam("Notification"),
			Responses:   oneResponses("Notification", "Notification", dto.NotificationResponse{}),
			Handler:     h.GetNotification,
		},
		{
			Method:      http.MethodPut,
			Path:        "/notifications/{id}",
			Summary:     "Update Notification",
			Description: "Update a notification by ID.",
			Tags:        tags,
			Params:      idParam("Notification"),
			Body:        dto.UpdateNotificationRequest{},
			Responses:   oneResponses("Updated notification", "Notification", dto.NotificationResponse{}),
			Handler:     h.UpdateNotification,
		},
		{
			Method:      http.MethodDelete,
			Path:        "/notifications/{id}",
			Summary:     "Delete Notification",
			Description: "Delete a notification by ID.",
			Tags:        tags,
			Params:      idParam("Notification"),
			Responses:   oneResponses("Deleted notification", "Notification", dto.NotificationResponse{}),
			Handler:     h.DeleteNotification,
		},
		{
			Method:      http.MethodPatch,
			Path:        "/notifications/{id}/read",
			Summary:     "Mark Notification as Read",
			Description: "Mark a notification as read.",
			Tags:        tags,
			Params:      idParam("Notification"),
			Responses:   oneResponses("Notification marked as read", "Notification", dto.NotificationResponse{}),
			Handler:     h.MarkAsRead,
		},
		{
			Method:      http.MethodPatch,
			Path:        "/notifications/{userId}/read-all",
			Summary:     "Mark All Notifications as Read",
			Description: "Mark all notifications as read for the authenticated user.",
			Tags:        tags,
			Params:      map[string]string{"userId": "User ID"},
			Responses:   oneResponses("Number of notifications marked as read", "User", dto.MarkAllReadResponse{}),
			Handler:     h.MarkAllAsRead,
		},
	}
}
