package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pluralsight/trello-helper/internal/constants"
	"github.com/pluralsight/trello-helper/pkg/trello"
	"github.com/pluralsight/trello-helper/pkg/trelloclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultYAMLIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrCredentialsNotConfigured = errors.New("API key and token are not configured. Run 'trello login' or set TRELLO_KEY and TRELLO_TOKEN")
	ErrKeyRequired              = errors.New("API key is required")
	ErrTokenRequired            = errors.New("authorization token is required")
	ErrListNameRequired         = errors.New("list name is required")
	ErrBoardNameRequired        = errors.New("board name is required")
	ErrCardNameRequired         = errors.New("card name is required")
)

// createClient builds an API client from the effective configuration:
// flags first, then environment, then the config file.
func createClient() (trello.Client, error) {
	key := viper.GetString("key")
	token := viper.GetString("token")

	if key == "" || token == "" {
		return nil, ErrCredentialsNotConfigured
	}

	config := &trello.Config{
		Key:     key,
		Token:   token,
		BaseURL: viper.GetString("base-url"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = stderrLogger{}
	}

	client, err := trelloclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// stderrLogger writes request/response logging to stderr in verbose mode.
type stderrLogger struct{}

func (stderrLogger) Debug(msg string, fields map[string]interface{}) { logLine("DEBUG", msg, fields) }
func (stderrLogger) Info(msg string, fields map[string]interface{})  { logLine("INFO", msg, fields) }
func (stderrLogger) Warn(msg string, fields map[string]interface{})  { logLine("WARN", msg, fields) }
func (stderrLogger) Error(msg string, fields map[string]interface{}) { logLine("ERROR", msg, fields) }

func logLine(level, msg string, fields map[string]interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, fields)
}

// StandardJSONRenderer encodes data as indented JSON on stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML on stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// CLIConfig is the persisted configuration written by 'trello login'.
type CLIConfig struct {
	Key     string `yaml:"key"`
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base-url,omitempty"`
}

func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".trello", "config.yml"), nil
}

// saveCLIConfig writes the configuration file, creating the config
// directory if needed. The file holds credentials, hence the tight
// permissions.
func saveCLIConfig(config CLIConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format("2006-01-02")
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
