package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elijahnyp/voice_scripts/sensors"
	"github.com/elijahnyp/voice_scripts/util"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pi_sensors <keyword> [words...]",
	Short: sensors.Info.Description,
	Long: `Voice assistant user script that speaks the latest pi_sensors reading
for a room, e.g. "sensors what's the temperature in the study".

Settings are read from a JSON file named after the binary.`,
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			if err := sensors.Info.Print(cmd.OutOrStdout()); err != nil {
				util.Logger.Error().Msgf("unable to print descriptor: %v", err)
			}
			return
		}
		exe, err := util.ExecutablePath()
		if err != nil {
			exe = os.Args[0]
		}
		dir := filepath.Dir(exe)
		envErr := util.SetupConfig(dir)
		util.LogInit(util.Config.GetString("log_level"))
		if envErr != nil {
			util.Logger.Warn().Msgf("%v", envErr)
		}

		text := sensors.Main(cmd.Context(), sensors.ConfigPath(exe), dir, args)
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
