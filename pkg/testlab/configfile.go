package testlab

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hexlevel-io/testlab/internal/constants"
)

// FileConfig is the on-disk YAML representation of client configuration.
// Stored tokens let a client resume without re-authenticating.
type FileConfig struct {
	Endpoint     string    `mapstructure:"endpoint"      yaml:"endpoint,omitempty"`
	ClientID     string    `mapstructure:"client_id"     yaml:"client_id,omitempty"`
	ClientSecret string    `mapstructure:"client_secret" yaml:"client_secret,omitempty"`
	TokenURL     string    `mapstructure:"token_url"     yaml:"token_url,omitempty"`
	AccessToken  string    `mapstructure:"access_token"  yaml:"access_token,omitempty"`
	TokenExpiry  time.Time `mapstructure:"token_expiry"  yaml:"token_expiry,omitempty"`
	UserAgent    string    `mapstructure:"user_agent"    yaml:"user_agent,omitempty"`
	Debug        bool      `mapstructure:"debug"         yaml:"debug,omitempty"`
}

// LoadFileConfig reads a YAML config file. Environment variables prefixed
// with TESTLAB_ override file values, e.g. TESTLAB_CLIENT_SECRET.
func LoadFileConfig(path string) (*FileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TESTLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults register the keys so environment overrides apply even when
	// the file omits them.
	v.SetDefault("endpoint", "")
	v.SetDefault("client_id", "")
	v.SetDefault("client_secret", "")
	v.SetDefault("token_url", "")
	v.SetDefault("access_token", "")
	v.SetDefault("user_agent", "")
	v.SetDefault("debug", false)

	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fileConfig FileConfig

	err = v.Unmarshal(&fileConfig)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &fileConfig, nil
}

// Save writes the config file with owner-only permissions, creating the
// parent directory if needed.
func (c *FileConfig) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config file: %w", err)
	}

	dir := filepath.Dir(path)

	err = os.MkdirAll(dir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ClientConfig converts the file representation into a client Config.
func (c *FileConfig) ClientConfig(path string) *Config {
	return &Config{
		Endpoint:     c.Endpoint,
		AccessToken:  c.AccessToken,
		TokenExpiry:  c.TokenExpiry,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.TokenURL,
		UserAgent:    c.UserAgent,
		Debug:        c.Debug,
		ConfigPath:   path,
	}
}

// FileTokenStore persists refreshed access tokens back to a config file. It
// serializes writers so concurrent token refreshes do not corrupt the file.
type FileTokenStore struct {
	Path string

	mu sync.Mutex
}

// UpdateToken stores a token and its expiry in the config file, preserving
// the other fields. A missing file is created.
func (s *FileTokenStore) UpdateToken(token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fileConfig := &FileConfig{}

	data, err := os.ReadFile(s.Path)
	if err == nil {
		err = yaml.Unmarshal(data, fileConfig)
		if err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("reading config file: %w", err)
	}

	fileConfig.AccessToken = token
	fileConfig.TokenExpiry = expiresAt

	return fileConfig.Save(s.Path)
}
