package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"

	"github.com/custodia-labs/ghvault-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Keys are flat; values are persisted immediately on Set.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	defaults map[string]any
	data     map[string]any
}

// NewConfigStore creates a TOML-based config store. If configDir is
// empty, defaults to ~/.ghvault/config.toml. When the config file does
// not exist yet it is created populated with defaults, so a first run
// leaves an editable file behind.
func NewConfigStore(configDir string, defaults map[string]any) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".ghvault")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		defaults: defaults,
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
// Non-string values are coerced; missing keys yield the empty string.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}
	return cast.ToString(val)
}

// Set stores a configuration value and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}

	// The file holds a token, so restrict permissions.
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file, creating it with the
// store's defaults if it does not exist yet.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]any, len(s.defaults))
			for k, v := range s.defaults {
				s.data[k] = v
			}
			return s.save()
		}
		return err
	}

	loaded := make(map[string]any)
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	s.data = loaded
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
