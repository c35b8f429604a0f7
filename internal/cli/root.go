package cli

import (
	"strings"

	"chronotask/internal/storage"
	"chronotask/internal/storage/postgres"
	"chronotask/internal/storage/sqlite"
	"chronotask/internal/utils"
)

// Context carries the wired collaborators into every command.
type Context struct {
	Persister storage.Persister
	Debug     bool
}

// NewPersister picks the persistence backend from the config string: a
// postgres:// connection string, a .db/.sqlite path, or a JSON file path
// (the default).
func NewPersister(config string) storage.Persister {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return postgres.NewStore(config)
	}

	path := utils.ExpandHome(config)
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		return sqlite.NewStore(path)
	}
	return storage.NewJSONStore(path)
}
