package settings

import "context"

// SettingsRepository persists the single-user settings row.
type SettingsRepository interface {
	// Get retrieves the settings, returning defaults when no row exists yet
	Get(ctx context.Context) (UserSettings, error)

	// Update replaces the stored settings
	Update(ctx context.Context, settings UserSettings) error
}
