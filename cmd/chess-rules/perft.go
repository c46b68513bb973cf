// perft.go - Move generation counts and cross-checking
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/crosscheck"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

type perftOptions struct {
	depth      int
	layoutFile string
	side       string
	divide     bool
	crossCheck bool
	walk       int
}

func newPerftCmd(a *app) *cobra.Command {
	opts := &perftOptions{}

	cmd := &cobra.Command{
		Use:   "perft [moves...]",
		Short: "Count leaf nodes of the legal move tree",
		Long: `Counts the positions reachable in exactly --depth plies. The start is the
standard position after the given moves, or the layout read from --layout.
Promotions count once since the engine promotes to a Queen.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPerft(opts, args)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.depth, "depth", "d", 3, "Depth in plies")
	flags.StringVar(&opts.layoutFile, "layout", "", "Start from the 8-row board layout in this file")
	flags.StringVar(&opts.side, "side", "white", "Side to move for --layout: white or black")
	flags.BoolVar(&opts.divide, "divide", false, "Print the count below each root move")
	flags.BoolVar(&opts.crossCheck, "cross-check", false, "Compare root and child moves with the reference generator")
	flags.IntVar(&opts.walk, "walk", 0, "Also cross-check along a deterministic game of this many plies")
	return cmd
}

func (a *app) runPerft(opts *perftOptions, args []string) error {
	if opts.depth < 1 {
		return fmt.Errorf("perft: depth must be at least 1, got %d", opts.depth)
	}
	start, err := a.startPosition(opts, args)
	if err != nil {
		return err
	}
	out := a.cfg.OutputFile

	e, _ := start()
	if opts.divide {
		entries := engine.Divide(e, opts.depth)
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Move.String() < entries[j].Move.String()
		})
		var total uint64
		for _, entry := range entries {
			fmt.Fprintf(out, "%s: %d\n", entry.Move, entry.Nodes)
			total += entry.Nodes
		}
		fmt.Fprintf(out, "\nMoves: %d\nNodes: %d\n", len(entries), total)
	} else {
		fmt.Fprintf(out, "Nodes: %d\n", engine.Perft(e, opts.depth))
	}

	if !opts.crossCheck && opts.walk == 0 {
		return nil
	}

	var mismatches []crosscheck.Mismatch
	if opts.crossCheck {
		e, _ := start()
		mismatches = append(mismatches, crossCheckChildren(e)...)
	}
	if opts.walk > 0 {
		e, _ := start()
		found, err := crosscheck.Walk(e, opts.walk, crosscheck.Stride(7, 3))
		if err != nil {
			return err
		}
		mismatches = append(mismatches, found...)
	}

	for _, m := range mismatches {
		fmt.Fprintf(out, "mismatch at %s\n", m.FEN)
		if len(m.Missing) > 0 {
			fmt.Fprintf(out, "  missing: %s\n", strings.Join(m.Missing, " "))
		}
		if len(m.Extra) > 0 {
			fmt.Fprintf(out, "  extra:   %s\n", strings.Join(m.Extra, " "))
		}
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("perft: %d position(s) disagree with the reference generator", len(mismatches))
	}
	fmt.Fprintln(out, "Cross-check: ok")
	return nil
}

// crossCheckChildren compares the position and every position one legal
// move away.
func crossCheckChildren(e *engine.Engine) []crosscheck.Mismatch {
	var mismatches []crosscheck.Mismatch
	if m := crosscheck.Compare(e); !m.Empty() {
		mismatches = append(mismatches, m)
	}
	for _, move := range e.GetAllAvailableMoves() {
		if err := e.MakeMove(move, false); err != nil {
			continue
		}
		if m := crosscheck.Compare(e); !m.Empty() {
			mismatches = append(mismatches, m)
		}
		e.Undo()
	}
	return mismatches
}

// startPosition validates the start options once and returns a constructor
// for fresh engines at that position.
func (a *app) startPosition(opts *perftOptions, args []string) (func() (*engine.Engine, error), error) {
	if opts.layoutFile == "" {
		start := func() (*engine.Engine, error) { return a.replayArgs(args) }
		if _, err := start(); err != nil {
			return nil, err
		}
		return start, nil
	}

	if len(args) > 0 {
		return nil, fmt.Errorf("perft: moves cannot be combined with --layout")
	}
	var toMove chess.Colour
	switch strings.ToLower(opts.side) {
	case "white", "w":
		toMove = chess.White
	case "black", "b":
		toMove = chess.Black
	default:
		return nil, fmt.Errorf("perft: unknown side %q", opts.side)
	}
	data, err := os.ReadFile(opts.layoutFile)
	if err != nil {
		return nil, err
	}
	layout := strings.TrimSpace(string(data))

	start := func() (*engine.Engine, error) {
		e := engine.New()
		if err := e.SetBoard(layout); err != nil {
			return nil, err
		}
		e.SetCurrentPlayer(toMove)
		return e, nil
	}
	if _, err := start(); err != nil {
		return nil, err
	}
	return start, nil
}
