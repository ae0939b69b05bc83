package history

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Manager handles the history database connection, falling back to a local
// SQLite file when Postgres is unreachable so a corpus run always leaves an
// audit trail.
type Manager struct {
	DB          *gorm.DB
	UsingSqlite bool
	Logger      zerolog.Logger
}

// NewManager creates a new database manager.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{Logger: log}
}

// Connect establishes the history database connection. With a Postgres host
// configured it is tried first; otherwise, or on failure, a local SQLite
// file is used.
func (m *Manager) Connect() error {
	var err error

	if viper.GetString("history.db.host") != "" {
		m.DB, err = m.getPostgresDB()
		if err == nil {
			m.Logger.Info().Msg("Connected to history Postgres DB")
			return nil
		}
		m.Logger.Error().Err(err).Msg("Failed to connect to Postgres history DB, trying SQLite")
	}

	m.DB, err = m.getSqliteDB(viper.GetString("history.path"))
	if err != nil {
		return fmt.Errorf("failed to get local SQLite history DB: %w", err)
	}
	m.UsingSqlite = true
	return nil
}

func (m *Manager) getPostgresDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		viper.GetString("history.db.host"),
		viper.GetString("history.db.port"),
		viper.GetString("history.db.username"),
		viper.GetString("history.db.password"),
		viper.GetString("history.db.database"),
	)

	m.Logger.Debug().Msgf("Connecting to Postgres history DB at '%s'", dsn)

	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}

func (m *Manager) getSqliteDB(path string) (*gorm.DB, error) {
	if path == "" {
		path = "levelmigrate_history.db"
	}
	m.Logger.Info().Str("path", path).Msg("Using local SQLite history DB")
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}
