// Command mjcli deals rounds, scores a single hand from the command line,
// and verifies replay logs — a thin cobra wrapper around internal/mahjong,
// internal/agari and internal/replay, grounded on the teacher's user/main.go
// single-rootCmd-plus-configFile idiom.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lamyinia/riichi-engine/internal/config"
	"github.com/lamyinia/riichi-engine/internal/corelog"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "mjcli",
	Short: "mjcli deals, scores and replay-verifies riichi mahjong rounds",
}

func loadRules() config.Ruleset {
	if configFile == "" {
		return config.Default()
	}
	rs, _, err := config.Load(configFile)
	if err != nil {
		corelog.Fatal("mjcli: loading %s: %v", configFile, err)
	}
	return rs
}

func init() {
	corelog.Init("mjcli", "info")
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "ruleset config file (defaults to config.Default())")
	rootCmd.AddCommand(newDealCmd(), newScoreCmd(), newReplayCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
