package main

import (
	"fmt"
	"path/filepath"

	"github.com/elijahnyp/voice_scripts/kodi"
	"github.com/elijahnyp/voice_scripts/util"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kodi_control <keyword> <command> [words...]",
	Short: kodi.Info.Description,
	Long: `Voice assistant user script that drives Kodi over JSON-RPC.

Commands: help, play <album or song>, stop, pause, restart, mute, unmute,
next, previous. Run without arguments to print the registration descriptor.
Settings are read from kodi_config.json beside the binary.`,
	// spoken words are never flags
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			if err := kodi.Info.Print(cmd.OutOrStdout()); err != nil {
				util.Logger.Error().Msgf("unable to print descriptor: %v", err)
			}
			return
		}
		dir := util.ExecutableDir()
		envErr := util.SetupConfig(dir)
		util.LogInit(util.Config.GetString("log_level"))
		if envErr != nil {
			util.Logger.Warn().Msgf("%v", envErr)
		}

		text := kodi.Main(cmd.Context(), filepath.Join(dir, kodi.ConfigFileName), args[0], args[1:])
		fmt.Fprintln(cmd.OutOrStdout(), text)

		if err := util.NewRelay().Publish(text); err != nil {
			util.Logger.Warn().Msgf("unable to relay response: %v", err)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		util.Logger.Error().Msgf("%v", err)
	}
}
