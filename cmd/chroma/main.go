// chroma is a terminal falling-block puzzle where locked cells clear in
// same-color runs and full rows, and the board cascades until stable.
//
// Usage:
//
//	chroma list                  - List game modes
//	chroma play [mode]           - Play a mode (default: chroma)
//	chroma menu                  - Start menu to pick modes interactively
//	chroma serve                 - Start SSH server for remote play
//	chroma scores <mode>         - Show high scores and recent runs
//	chroma config                - Print the effective game config
//	chroma resolve <layout.yaml> - Lock/resolve a board layout and print every pass
//	chroma matches <layout.yaml> - Print the matched cells of a layout
//	chroma lines <layout.yaml>   - Print the number of full rows of a layout
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.chroma/scores.db)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chroma-cascade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/chroma-cascade/internal/games/cascade"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// logger is configured before every command runs.
var logger = log.New(io.Discard)

// annotationTUI marks commands that own the terminal; their logs go to
// --log-file or nowhere.
const annotationTUI = "tui"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chroma",
	Short: "Chroma Cascade - color-matching falling blocks in your terminal",
	Long: `Chroma Cascade is a falling-block puzzle. Every cell of a piece has its
own color. Three or more same-colored cells in a row or column clear, full
rows clear, and whatever is left falls and may chain into a cascade.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  config   - Print the effective game config
  resolve  - Resolve a board layout file and print each cascade pass
  matches  - Show the matches in a board layout file
  lines    - Count full rows in a board layout file

Examples:
  chroma play
  chroma play chroma_zen --difficulty hard
  chroma menu
  chroma serve --ssh :2222
  chroma resolve testdata/chain.yaml --format yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(linesCmd)
}

// setupLogger builds the shared logger from --log-level and --log-file.
func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = cmd.ErrOrStderr()
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
	case cmd.Annotations[annotationTUI] == "true":
		w = io.Discard
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "chroma",
		Level:           level,
	})
	return nil
}

// openStore opens the scores database, logging and returning nil on failure
// so games still run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
