package config

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	defaultConfigFile = "config.ini"

	// DefaultExtensionID is the Doufen extension shipped with the bundled browser.
	DefaultExtensionID = "ghppfgfeoafdcaebjoglabppkfmbcjdd"

	// Ids longer than this are treated as unreadable, like an overflowing buffer.
	maxExtensionIDLen = 32

	DefaultUserDataDir = "userdata"
	DefaultChromePath  = `.\chrome\chrome.exe`
	DefaultUpdateURL   = "https://update.doufen.org/"
)

type Config struct {
	ExtensionID string

	UserDataDir string
	ChromePath  string
	UpdateURL   string

	LogLevel slog.Level

	// LogPath enables the NDJSON run log when set. Leave empty to disable file logging.
	LogPath string
}

func Load() Config {
	return LoadFrom(afero.NewOsFs(), defaultConfigFile)
}

// LoadFrom never fails: a missing or malformed file leaves the defaults in place.
func LoadFrom(fs afero.Fs, path string) Config {
	v := viper.New()
	// Flat key=value lines once INI comments and section headers are dropped.
	v.SetConfigType("dotenv")

	v.SetEnvPrefix("DOUFEN")
	v.AutomaticEnv()

	v.SetDefault("id", DefaultExtensionID)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_path", "")

	if b, err := afero.ReadFile(fs, path); err == nil {
		_ = v.ReadConfig(bytes.NewReader(stripINI(b)))
	}

	cfg := Config{
		ExtensionID: extensionID(v.GetString("id")),
		UserDataDir: DefaultUserDataDir,
		ChromePath:  DefaultChromePath,
		UpdateURL:   DefaultUpdateURL,
		LogLevel:    slog.LevelInfo,
		LogPath:     strings.TrimSpace(v.GetString("log_path")),
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v.GetString("log_level")))); err == nil {
		cfg.LogLevel = lvl
	}
	return cfg
}

// stripINI drops blank lines, `;`/`#` comments and `[section]` headers, and
// trims spaces around the first `=`.
func stripINI(b []byte) []byte {
	var out bytes.Buffer
	for _, line := range strings.Split(string(b), "\n") {
		t := strings.TrimSpace(line)
		if t == "" || t[0] == ';' || t[0] == '#' || (t[0] == '[' && strings.HasSuffix(t, "]")) {
			continue
		}
		if k, val, ok := strings.Cut(t, "="); ok {
			t = strings.TrimSpace(k) + "=" + strings.TrimSpace(val)
		}
		out.WriteString(t)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

func extensionID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxExtensionIDLen {
		return DefaultExtensionID
	}
	return id
}
