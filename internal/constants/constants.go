package constants

const (
	AppName = "chronotask"

	// StorageName is the fixed namespace key the full store snapshot lives
	// under, across every persistence backend.
	StorageName = "app-storage"

	DateFormat = "2006-01-02"
	TimeFormat = "15:04"

	DefaultConfigPath = "~/.config/chronotask/chronotask.json"

	// DefaultKeyringUser is the keyring account name the completion-service
	// API key is stored under.
	DefaultKeyringUser = "openai-api-key"

	// EnvAPIKey overrides the keyring-stored completion-service API key.
	EnvAPIKey = "CHRONOTASK_OPENAI_API_KEY"
)
