package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/layout"
)

// Output formats of the layout commands.
const (
	formatText = "text"
	formatYAML = "yaml"
)

var (
	flagFormat string
	flagOut    string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <layout.yaml>",
	Short: "Resolve a board layout and print every cascade pass",
	Long: `Load a board layout and run the cascade resolver on it.

If the layout has a piece, the piece is locked first (and the run may end in
game over if part of it is above the board). Otherwise the board is resolved
as is. Every pass is printed with its cleared cells and points, followed by
the outcome, the updated session and the final board.

With --out the final board and session are also written as a layout file,
ready for the next resolve.

Example layout:

  rows:
    - "B....."
    - ".BB..."
    - "PPPP.."
  session:
    level: 1`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

var matchesCmd = &cobra.Command{
	Use:   "matches <layout.yaml>",
	Short: "Print the matched cells of a board layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatches,
}

var linesCmd = &cobra.Command{
	Use:   "lines <layout.yaml>",
	Short: "Print the number of full rows of a board layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLines,
}

func init() {
	for _, c := range []*cobra.Command{resolveCmd, matchesCmd, linesCmd} {
		c.Flags().StringVar(&flagFormat, "format", formatText, "Output format: text, yaml")
	}
	resolveCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write the resolved board and session as a layout file")
}

// passReport is one resolver pass in machine-readable form.
type passReport struct {
	Depth       int      `yaml:"depth"`
	Cleared     []string `yaml:"cleared,flow"`
	MatchSize   int      `yaml:"match_size"`
	MatchPoints int      `yaml:"match_points"`
	FullRows    int      `yaml:"full_rows"`
	RowsRemoved int      `yaml:"rows_removed"`
	LinePoints  int      `yaml:"line_points"`
	Board       []string `yaml:"board"` // After gravity
}

type outcomeReport struct {
	ScoreDelta   int  `yaml:"score_delta"`
	LinesCleared int  `yaml:"lines_cleared"`
	CascadeDepth int  `yaml:"cascade_depth"`
	Combo        int  `yaml:"combo"`
	ComboBonus   int  `yaml:"combo_bonus"`
	Level        int  `yaml:"level"`
	LeveledUp    bool `yaml:"leveled_up"`
}

type resolveReport struct {
	GameOver bool               `yaml:"game_over"`
	Passes   []passReport       `yaml:"passes"`
	Outcome  outcomeReport      `yaml:"outcome"`
	Session  layout.SessionSpec `yaml:"session"`
	Board    []string           `yaml:"board"`
}

type matchesReport struct {
	Size  int      `yaml:"size"`
	Cells []string `yaml:"cells,flow"`
}

type linesReport struct {
	FullRows int   `yaml:"full_rows"`
	Rows     []int `yaml:"rows,flow"`
}

func checkFormat() error {
	switch flagFormat {
	case formatText, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", flagFormat)
	}
}

// cellName formats a cell as row,col.
func cellName(c engine.Cell) string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	l, err := layout.Load(args[0])
	if err != nil {
		return err
	}

	var settled [][]string
	resolver := engine.NewResolver(engine.WithObserver(func(ev engine.PassEvent) {
		if ev.Phase == engine.PhaseSettled {
			settled = append(settled, ev.Board.Rows())
		}
	}))

	var (
		session  engine.Session
		out      engine.Outcome
		gameOver bool
	)
	if l.Piece != nil {
		session, out, gameOver = resolver.Lock(l.Board, l.Piece, l.Session)
	} else {
		session, out = resolver.Resolve(l.Board, l.Session)
	}
	logger.Debug("resolved layout", "file", args[0], "passes", len(out.Passes), "game_over", gameOver)

	if flagOut != "" {
		data, err := layout.Marshal(l.Board, session)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagOut, data, 0o644); err != nil {
			return fmt.Errorf("cannot write layout: %w", err)
		}
		logger.Debug("layout written", "file", flagOut)
	}

	report := resolveReport{
		GameOver: gameOver,
		Outcome: outcomeReport{
			ScoreDelta:   out.ScoreDelta,
			LinesCleared: out.LinesCleared,
			CascadeDepth: out.CascadeDepth,
			Combo:        out.Combo,
			ComboBonus:   out.ComboBonus,
			Level:        out.Level,
			LeveledUp:    out.LeveledUp,
		},
		Session: layout.SessionSpec{
			Score:    session.Score,
			Lines:    session.Lines,
			Level:    session.Level,
			Combo:    session.Combo,
			MaxCombo: session.MaxCombo,
		},
		Board: l.Board.Rows(),
	}
	for i, p := range out.Passes {
		pr := passReport{
			Depth:       p.Depth,
			MatchSize:   p.MatchSize(),
			MatchPoints: p.MatchPoints,
			FullRows:    p.FullRows,
			RowsRemoved: p.RowsRemoved,
			LinePoints:  p.LinePoints,
		}
		for _, c := range p.Cleared {
			pr.Cleared = append(pr.Cleared, cellName(c.Cell))
		}
		if i < len(settled) {
			pr.Board = settled[i]
		}
		report.Passes = append(report.Passes, pr)
	}

	w := cmd.OutOrStdout()
	if flagFormat == formatYAML {
		return writeYAML(w, report)
	}

	if report.GameOver {
		fmt.Fprintln(w, "GAME OVER: piece locked above the board")
	}
	for _, p := range report.Passes {
		fmt.Fprintf(w, "pass %d: matched %d cells (+%d), full rows %d (+%d), removed %d\n",
			p.Depth, p.MatchSize, p.MatchPoints, p.FullRows, p.LinePoints, p.RowsRemoved)
		if len(p.Cleared) > 0 {
			fmt.Fprintf(w, "  cleared: %s\n", strings.Join(p.Cleared, " "))
		}
		writeBoard(w, "  ", p.Board)
	}
	o := report.Outcome
	fmt.Fprintf(w, "outcome: +%d points, %d lines, depth %d, combo %d (bonus %d), level %d",
		o.ScoreDelta, o.LinesCleared, o.CascadeDepth, o.Combo, o.ComboBonus, o.Level)
	if o.LeveledUp {
		fmt.Fprint(w, " (level up)")
	}
	fmt.Fprintln(w)
	s := report.Session
	fmt.Fprintf(w, "session: score %d, lines %d, level %d, combo %d, max combo %d\n",
		s.Score, s.Lines, s.Level, s.Combo, s.MaxCombo)
	fmt.Fprintln(w, "board:")
	writeBoard(w, "  ", report.Board)
	return nil
}

func runMatches(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	l, err := layout.Load(args[0])
	if err != nil {
		return err
	}

	m := engine.FindMatches(l.Board)
	report := matchesReport{Size: m.Len()}
	for _, c := range m.Cells() {
		report.Cells = append(report.Cells, cellName(c))
	}

	w := cmd.OutOrStdout()
	if flagFormat == formatYAML {
		return writeYAML(w, report)
	}
	fmt.Fprintf(w, "match size: %d\n", report.Size)
	if report.Size > 0 {
		fmt.Fprintf(w, "cells: %s\n", strings.Join(report.Cells, " "))
	}
	return nil
}

func runLines(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}
	l, err := layout.Load(args[0])
	if err != nil {
		return err
	}

	report := linesReport{
		FullRows: engine.CountFullRows(l.Board),
		Rows:     engine.FullRows(l.Board),
	}

	w := cmd.OutOrStdout()
	if flagFormat == formatYAML {
		return writeYAML(w, report)
	}
	fmt.Fprintf(w, "full rows: %d\n", report.FullRows)
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cannot encode yaml: %w", err)
	}
	return enc.Close()
}

func writeBoard(w io.Writer, indent string, rows []string) {
	for _, r := range rows {
		fmt.Fprintf(w, "%s%s\n", indent, r)
	}
}
