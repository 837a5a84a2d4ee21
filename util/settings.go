package util

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const ENV_FILE = ".env"

// Config holds the settings shared by every script: log level and the
// optional MQTT relay. Per-script settings live in their own JSON file.
var Config = viper.New()

func GetRandString(n int) string {
	// using crypto/rand for better security
	const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		randBytes := make([]byte, 1)
		if _, err := rand.Read(randBytes); err != nil {
			// fallback to a simple approach if crypto/rand fails
			b[i] = letterBytes[i%len(letterBytes)]
		} else {
			b[i] = letterBytes[int(randBytes[0])%len(letterBytes)]
		}
	}
	return string(b)
}

// SetupConfig loads an optional .env file from dir and exposes the
// environment through Config. A .env read error is returned after the
// defaults are in place, so the caller can still start logging.
func SetupConfig(dir string) error {
	var envErr error
	envFile := filepath.Join(dir, ENV_FILE)
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			envErr = fmt.Errorf("unable to read %s: %w", envFile, err)
		}
	}

	// set defaults
	Config.SetDefault("Log_level", "warn")
	Config.SetDefault("Relay_broker_uri", "")
	Config.SetDefault("Relay_topic", "")
	Config.SetDefault("Relay_client_id", "voice_scripts")
	Config.SetDefault("Relay_username", "")
	Config.SetDefault("Relay_password", "")

	// environment variables
	Config.AutomaticEnv()
	return envErr
}

// NewScriptConfig returns a viper instance for one script's JSON file.
// Every key can be overridden by PREFIX_KEY in the environment.
func NewScriptConfig(prefix, path string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	return v
}

// EnsureConfigFile writes defaults to path when nothing is there yet and
// reports whether it did. An existing file is never touched.
//
// encoding/json is used for the write because viper drops nil values and
// empty maps from WriteConfigAs, and the placeholders are part of the file.
func EnsureConfigFile(path string, defaults interface{}) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	data, err := json.MarshalIndent(defaults, "", "    ")
	if err != nil {
		return false, fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("writing default config %s: %w", path, err)
	}
	Logger.Info().Msgf("created default config %s", path)
	return true, nil
}

// ExecutableDir is the directory holding the running binary, or "." when
// it cannot be determined.
func ExecutableDir() string {
	exe, err := ExecutablePath()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// ExecutablePath is the path the binary was invoked as, made absolute.
// Symlinks are kept so a linked script finds its config beside the link.
func ExecutablePath() (string, error) {
	return invokedPath(os.Args[0])
}

func invokedPath(arg0 string) (string, error) {
	if p, err := exec.LookPath(arg0); err == nil {
		if abs, err := filepath.Abs(p); err == nil {
			return abs, nil
		}
	}
	exe, err := os.Executable()
	if err != nil {
		Logger.Warn().Msgf("unable to locate executable: %v", err)
		return "", err
	}
	return exe, nil
}
