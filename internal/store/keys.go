package store

import "fmt"

// Storage slot names. They mirror the keys the browser console used, so
// an exported localStorage dump can be imported unchanged.
const (
	KeyAuthData = "authData"
	KeySettings = "simpleSettings"
	KeyNotes    = "talentbridge_notes"
	KeyUpdates  = "talentbridge_updates"

	// Anonymous theme fallback, used before anyone logs in.
	KeyTheme = "theme"
)

func ThemeKey(userID int) string {
	return fmt.Sprintf("theme_%d", userID)
}

func SeenAssignmentsKey(email string) string {
	return fmt.Sprintf("seen_assignments_%s", email)
}

func SeenUpdatesKey(email string) string {
	return fmt.Sprintf("seen_updates_%s", email)
}

func ProjectModulesKey(projectID int) string {
	return fmt.Sprintf("project_modules_%d", projectID)
}
