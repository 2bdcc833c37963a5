// dodge is a terminal arcade game: slide along the ground and dodge
// everything that falls from the sky.
//
// Usage:
//
//	dodge play      - Play in this terminal
//	dodge serve     - Start SSH server for remote play
//	dodge scores    - Show the best runs
//	dodge config    - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.dodge/scores.db)
//	--config <path>      - Use a custom tuning YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge the Poop - a falling-object arcade game for your terminal",
	Long: `Dodge the Poop puts you at the bottom of the screen while things fall
from above. Every object that drops past you scores a point; the more you
score, the faster and denser they fall. Touch one and it is game over.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective tuning

Examples:
  dodge play
  dodge play --seed 42 --mute
  dodge serve --ssh :2222
  dodge scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
