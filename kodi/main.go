package kodi

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/elijahnyp/voice_scripts/util"
)

var Info = util.Descriptor{
	Description:  "Control Kodi media centre.",
	Keywords:     []string{"kodi", "cody"},
	BeforeListen: "mute",
	AfterListen:  "unmute",
}

// Main handles one invocation: keyword is the word the assistant heard,
// params[0] the command and the rest its words.
func Main(ctx context.Context, configPath, keyword string, params []string) string {
	if len(params) < 1 {
		return fmt.Sprintf("Try %s help", keyword)
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		util.Logger.Warn().Msgf("Config read error: %v", err)
	}
	if !cfg.HaveServer() {
		return fmt.Sprintf("You need to edit %s to configure the kodi script.", filepath.Base(configPath))
	}
	if cfg.Debug {
		util.EnableDebug()
	}

	cmd := ParseCommand(params[0])
	util.Logger.Debug().Msgf("running %q (%d) with %v", params[0], cmd, params[1:])
	reply := NewController(NewClient(cfg), keyword).Run(ctx, cmd, params[1:])
	return reply.Text()
}
