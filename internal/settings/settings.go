package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/kirsle/configdir"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/DestinyFrog/Periodic-Tetris/internal"
	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
)

const (
	AppName   = "ptetris"
	EnvPrefix = "PTETRIS"
	LogFile   = "ptetris.log"
	HostKey   = "ssh_host_ed25519_key"
)

// Keys of the game settings, in display order.
const (
	KeyCols        = "cols"
	KeyRows        = "rows"
	KeyDelay       = "delay"
	KeyUnit        = "unit"
	KeyPolicy      = "policy"
	KeyClearTopRow = "clear-top-row"
	KeyCatalog     = "catalog"
	KeySeed        = "seed"
)

var gameKeys = []string{KeyCols, KeyRows, KeyDelay, KeyUnit, KeyPolicy, KeyClearTopRow, KeyCatalog, KeySeed}

type Settings struct {
	path    string
	changed bool
}

var settings *Settings

// ReadSettings loads settings.json from the config directory, creating it
// when missing. Subsequent calls return the same settings.
func ReadSettings() (*Settings, error) {
	if settings != nil {
		return settings, nil
	}

	configPath := configdir.LocalConfig(AppName)
	configPathFlag := viper.GetString("config-path")
	if len(configPathFlag) > 0 {
		configPath = configPathFlag
	}
	err := configdir.MakePath(configPath)
	if err != nil {
		return nil, err
	}

	SetDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("settings")
	viper.SetConfigType("json")
	viper.AddConfigPath(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Force config creation
			if err := viper.SafeWriteConfig(); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	settings = &Settings{path: configPath}
	return settings, nil
}

// SetDefaults registers the default game settings with viper.
func SetDefaults() {
	def := game.DefaultConfig()
	viper.SetDefault(KeyCols, def.Cols)
	viper.SetDefault(KeyRows, def.Rows)
	viper.SetDefault(KeyDelay, def.Delay.String())
	viper.SetDefault(KeyUnit, def.Unit)
	viper.SetDefault(KeyPolicy, string(def.Policy))
	viper.SetDefault(KeyClearTopRow, def.ClearTopRow)
	viper.SetDefault(KeyCatalog, "")
	viper.SetDefault(KeySeed, def.Seed)
}

// reset forgets the loaded settings so the next ReadSettings reads again
func reset() {
	settings = nil
}

// Path is the directory that holds settings.json and the other app files.
func (s *Settings) Path() string {
	return s.path
}

// File returns the path of name inside the config directory.
func (s *Settings) File(name string) string {
	return filepath.Join(s.path, name)
}

// GameConfig builds the game configuration from flags, environment and the
// settings file, in that order of precedence.
func (s *Settings) GameConfig() (game.Config, error) {
	delay, err := time.ParseDuration(viper.GetString(KeyDelay))
	if err != nil {
		return game.Config{}, fmt.Errorf("invalid %s setting: %w", KeyDelay, err)
	}
	cfg := game.Config{
		Cols:        viper.GetInt(KeyCols),
		Rows:        viper.GetInt(KeyRows),
		Delay:       delay,
		Unit:        viper.GetInt(KeyUnit),
		Policy:      game.Policy(viper.GetString(KeyPolicy)),
		ClearTopRow: viper.GetBool(KeyClearTopRow),
		Seed:        viper.GetInt64(KeySeed),
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

// Catalog is the configured catalog source; empty means the embedded one.
func (s *Settings) Catalog() string {
	return viper.GetString(KeyCatalog)
}

// Keys lists the game settings that can be shown and set.
func Keys() []string {
	return append([]string(nil), gameKeys...)
}

// Get returns the effective value of a game setting as text.
func (s *Settings) Get(key string) (string, error) {
	if !isGameKey(key) {
		return "", unknownKey(key)
	}
	return viper.GetString(key), nil
}

// Set validates and stores a game setting. Changes are written by
// PersistChanges.
func (s *Settings) Set(key, value string) error {
	if !isGameKey(key) {
		return unknownKey(key)
	}

	var parsed interface{}
	switch key {
	case KeyCols, KeyRows, KeyUnit:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got '%s'", key, value)
		}
		parsed = n
	case KeySeed:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got '%s'", key, value)
		}
		parsed = n
	case KeyDelay:
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s must be a duration like 150ms, got '%s'", key, value)
		}
		parsed = value
	case KeyClearTopRow:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got '%s'", key, value)
		}
		parsed = b
	default:
		parsed = value
	}

	previous := viper.Get(key)
	viper.Set(key, parsed)
	if key != KeyCatalog {
		if _, err := s.GameConfig(); err != nil {
			viper.Set(key, previous)
			return err
		}
	}
	s.changed = true
	return nil
}

// PersistChanges writes the settings file if anything changed.
func PersistChanges() {
	if settings == nil || !settings.changed {
		return
	}
	if err := viper.WriteConfig(); err != nil {
		fmt.Fprintln(os.Stderr, internal.Warn("Error saving settings: "), err)
		return
	}
	settings.changed = false
}

func isGameKey(key string) bool {
	return slices.Contains(gameKeys, key)
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown setting %s, expected one of %s", internal.Emph(key), strings.Join(gameKeys, ", "))
}
