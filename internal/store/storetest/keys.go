package storetest

import "github.com/inkwell-dev/inkwell/internal/models"

// EntityKeys is the key schema for every table the services touch.
func EntityKeys() map[string][]string {
	return map[string][]string{
		models.TeamTable:       {"id"},
		models.TeamUserTable:   {"team_id", "user_id"},
		models.TeamInviteTable: {"code"},
		models.ProjectTable:    {"id"},
		models.NoteTable:       {"id"},
		models.UserTable:       {"id"},
	}
}
