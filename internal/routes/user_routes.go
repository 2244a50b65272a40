package routes

import (
	"net/http"

	"contest_backend/internal/auth"
	"contest_backend/internal/handlers"
	"contest_backend/internal/openapi"
	"contest_backend/internal/services/dto"
)

var usersTags = []string{"Users"}

func userRoutes(h *handlers.UserHandler) []openapi.Route {
	return []openapi.Route{
		{
			Method:      http.MethodGet,
			Path:        "/users",
			Summary:     "Get Users",
			Description: "Get paginated list of users, optionally filtered by role or email.",
			Tags:        usersTags,
			Query:       dto.ListUsersQuery{},
			Responses:   listResponses("Paginated users", dto.Paginated[dto.UserResponse]{}),
			Handler:     h.ListUsers,
		},
		{
			Method:      http.MethodPost,
			Path:        "/users",
			Summary:     "Create User",
			Description: "Create a new user.",
			Tags:        usersTags,
			Body:        dto.CreateUserRequest{},
			Responses:   createResponses("Created user", dto.UserResponse{}, http.StatusConflict),
			Handler:     h.CreateUser,
			Permission:  auth.PermUsersWrite,
		},
		{
			Method:      http.MethodGet,
			Path:        "/users/{id}",
			Summary:     "Get User",
			Description: "Get a specific user by ID.",
			Tags:        usersTags,
			Params:      idParam("User"),
			Responses:   oneResponses("User", "User", dto.UserResponse{}),
			Handler:     h.GetUser,
		},
		{
			Method:      http.MethodPatch,
			Path:        "/users/{id}",
			Summary:     "Update User",
			Description: "Update a user by ID. Only provided fields are changed.",
			Tags:        usersTags,
			Params:      idParam("User"),
			Body:        dto.UpdateUserRequest{},
			Responses:   oneResponses("Updated user", "User", dto.UserResponse{}),
			Handler:     h.UpdateUser,
			Permission:  auth.PermUsersWrite,
		},
		{
			Method:      http.MethodDelete,
			Path:        "/users/{id}",
			Summary:     "Delete User",
			Description: "Delete a user by ID.",
			Tags:        usersTags,
			Params:      idParam("User"),
			Responses:   oneResponses("Deleted user", "User", dto.UserResponse{}),
			Handler:     h.DeleteUser,
			Permission:  auth.PermUsersWrite,
		},
	}
}

func profileRoutes(h *handlers.ProfileHandler) []openapi.Route {
	tags := []string{"Profiles"}
	return []openapi.Route{
		{
			Method:      http.MethodGet,
			Path:        "/profiles",
			Summary:     "Get Profiles",
			Description: "Get paginated list of profiles.",
			Tags:        tags,
			Query:       dto.ListProfilesQuery{},
			Responses:   listResponses("Paginated profiles", dto.Paginated[dto.ProfileResponse]{}),
			Handler:     h.ListProfiles,
		},
		{
			Method:      http.MethodPost,
			Path:        "/profiles",
			Summary:     "Create Profile",
			Description: "Create a profile for an existing user. A user can have only one profile.",
			Tags:        tags,
			Body:        dto.CreateProfileRequest{},
			Responses:   createResponses("Created profile", dto.ProfileResponse{}, http.StatusNotFound, http.StatusConflict),
			Handler:     h.CreateProfile,
		},
		{
			Method:      http.MethodGet,
			Path:        "/profiles/{id}",
			Summary:     "Get Profile",
			Description: "Get a specific profile by ID.",
			Tags:        tags,
			Params:      idParam("Profile"),
			Responses:   oneResponses("Profile", "Profile", dto.ProfileResponse{}),
			Handler:     h.GetProfile,
		},
		{
			Method:      http.MethodPatch,
			Path:        "/profiles/{id}",
			Summary:     "Update Profile",
			Description: "Update a profile by ID.",
			Tags:        tags,
			Params:      idParam("Profile"),
			Body:        dto.UpdateProfileRequest{},
			Responses:   oneResponses("Updated profile", "Profile", dto.ProfileResponse{}),
			Handler:     h.UpdateProfile,
		},
		{
			Method:      http.MethodDelete,
			Path:        "/profiles/{id}",
			Summary:     "Delete Profile",
			Description: "Delete a profile by ID.",
			Tags:        tags,
			Params:      idParam("Profile"),
			Responses:   oneResponses("Deleted profile", "Profile", dto.ProfileResponse{}),
			Handler:     h.DeleteProfile,
		},
	}
}
