package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Load reads configuration from the JSON config file and sets default
// values. configDir is the directory containing the config file; a missing
// file leaves the defaults in place.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")
	viper.SetDefault("levelsDir", "app/Laserfingers/Levels")
	viper.SetDefault("verifyMotion", true)

	viper.SetDefault("history.backend", "none")
	viper.SetDefault("history.path", "levelmigrate_history.db")
	viper.SetDefault("history.db.host", "")
	viper.SetDefault("history.db.port", "5432")
	viper.SetDefault("history.db.username", "postgres")
	viper.SetDefault("history.db.password", "postgres")
	viper.SetDefault("history.db.database", "laserfingers")

	viper.SetDefault("schema.outputPath", "level.schema.json")

	viper.SetConfigName("levelmigrate.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
