package sensors

import (
	"context"

	"github.com/elijahnyp/voice_scripts/util"
)

var Info = util.Descriptor{
	Description: "Get pi_sensors readings.",
	Keywords:    []string{"sensor", "sensors", "census"},
}

const msgTryHelp = "Sorry, try sensors help"

// Main handles one invocation. args starts with the keyword the assistant
// heard; the words after it describe the reading.
func Main(ctx context.Context, configPath, baseDir string, args []string) string {
	if len(args) < 2 {
		return msgTryHelp
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		util.Logger.Error().Msgf("unable to read config file %s: %v", configPath, err)
	}
	return NewReader(cfg, baseDir).Run(ctx, args[1:])
}
