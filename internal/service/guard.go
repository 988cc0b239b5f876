package service

import (
	"strings"

	"github.com/dtroode/myflix-server/internal/model"
)

// Authorize permits access when the authenticated username owns the resource.
// Usernames compare case-insensitively, matching how they are stored.
func Authorize(authenticated, owner string) error {
	if authenticated == "" || !strings.EqualFold(authenticated, owner) {
		return model.ErrForbidden
	}
	return nil
}
