package kodi

import (
	"github.com/elijahnyp/voice_scripts/util"
)

const ConfigFileName = "kodi_config.json"

const DefaultPort = 8080

type Config struct {
	Host  string
	Port  int
	Debug bool
}

// fileDefaults is what a first run writes; a null host marks the file as
// not yet edited.
type fileDefaults struct {
	Host  *string `json:"host"`
	Port  int     `json:"port"`
	Debug bool    `json:"debug"`
}

// LoadConfig reads path, creating it with defaults on first run. A file
// that cannot be parsed yields an empty Config and the parse error.
func LoadConfig(path string) (Config, error) {
	created, err := util.EnsureConfigFile(path, fileDefaults{Port: DefaultPort})
	if err != nil {
		return Config{}, err
	}
	if created {
		return Config{Port: DefaultPort}, nil
	}

	v := util.NewScriptConfig("kodi", path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}
	return Config{
		Host:  v.GetString("host"),
		Port:  v.GetInt("port"),
		Debug: v.GetBool("debug"),
	}, nil
}

// HaveServer reports whether both host and port are set.
func (c Config) HaveServer() bool {
	return c.Host != "" && c.Port != 0
}
