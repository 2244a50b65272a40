package auth

import (
	"slices"

	"contest_backend/internal/models"
)

// Разрешения на запись справочных данных конкурса
const (
	PermUsersWrite    = "users:write"
	PermContestsWrite = "contests:write"
	PermMediaModerate = "media:moderate"
)

var Permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		PermUsersWrite,
		PermContestsWrite,
		PermMediaModerate,
	},
	models.UserRoleModerator: {
		PermContestsWrite,
		PermMediaModerate,
	},
	models.UserRoleUser: {},
}

// HasPermission проверяет, есть ли у роли указанное разрешение
func HasPermission(role, permission string) bool {
	permissions, exists := Permissions[models.UserRole(role)]
	if !exists {
		return false
	}
	return slices.Contains(permissions, permission)
}

func IsAdmin(claims *Claims) bool {
	return claims.Role == string(models.UserRoleAdmin)
}

func IsModeratorOrHigher(claims *Claims) bool {
	return claims.Role == string(models.UserRoleModerator) || IsAdmin(claims)
}
