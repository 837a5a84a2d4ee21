package sensors

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/elijahnyp/voice_scripts/util"
)

type Config struct {
	Mappings map[string]string
	URL      string
	CertFile string
	Rooms    []string
	Sensors  []string
}

type fileDefaults struct {
	URL      string            `json:"url"`
	CertFile string            `json:"certfile"`
	Rooms    []string          `json:"rooms"`
	Sensors  []string          `json:"sensors"`
	Mappings map[string]string `json:"mappings"`
}

// ConfigPath swaps the extension of the executable for .json.
func ConfigPath(executable string) string {
	return strings.TrimSuffix(executable, filepath.Ext(executable)) + ".json"
}

// LoadConfig returns nil until url, rooms and sensors have all been
// filled in. The file is created with empty placeholders on first run.
func LoadConfig(path string) (*Config, error) {
	created, err := util.EnsureConfigFile(path, fileDefaults{
		Rooms:    []string{},
		Sensors:  []string{},
		Mappings: map[string]string{},
	})
	if err != nil || created {
		return nil, err
	}

	v := util.NewScriptConfig("pi_sensors", path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	cfg := &Config{
		URL:      v.GetString("url"),
		CertFile: v.GetString("certfile"),
		Rooms:    v.GetStringSlice("rooms"),
		Sensors:  v.GetStringSlice("sensors"),
		Mappings: v.GetStringMapString("mappings"),
	}
	if cfg.URL == "" || len(cfg.Rooms) == 0 || len(cfg.Sensors) == 0 {
		util.Logger.Info().Msgf("%s is missing url, rooms or sensors", path)
		return nil, nil
	}
	return cfg, nil
}

func (c *Config) HasRoom(name string) bool {
	return slices.Contains(c.Rooms, name)
}

func (c *Config) HasSensor(name string) bool {
	return slices.Contains(c.Sensors, name)
}
