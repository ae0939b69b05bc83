package history

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// NewBackend creates a history backend based on configuration. The "none"
// backend disables recording entirely and returns nil.
func NewBackend(log zerolog.Logger) (Backend, error) {
	switch backend := viper.GetString("history.backend"); backend {
	case "none":
		return nil, nil
	case "memory":
		return NewMemoryBackend(), nil
	case "db":
		manager := NewManager(log)
		if err := manager.Connect(); err != nil {
			return nil, err
		}
		return NewGormBackend(manager.DB)
	default:
		return nil, fmt.Errorf("unknown history backend: %s", backend)
	}
}
