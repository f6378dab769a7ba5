package settingsRepo

// SettingsRepository is a key/value settings table.
type SettingsRepository interface {
	// Get returns the value for a key, or "" when the key is unset.
	Get(key string) (string, error)
	// Set stores a value for a key, creating it if absent.
	Set(key, value string) error
}
