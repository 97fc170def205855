package utils

import (
	"slices"

	"github.com/MiraiSubject/CoteValentines2023/config"
)

// CheckAuth reports whether the user may run privileged commands, either
// through the configured developer list or one of the configured admin roles.
func CheckAuth(userID string, roles []string) bool {
	authConfig := config.Cfg.Commands.Auth

	if slices.Contains(authConfig.Developers, userID) {
		return true
	}

	for _, role := range roles {
		if slices.Contains(authConfig.AdminsRoles, role) {
			return true
		}
	}

	return false
}
