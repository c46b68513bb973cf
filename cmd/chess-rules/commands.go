// commands.go - Position commands: moves, play and status
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// replayArgs replays the command line moves on a fresh engine.
func (a *app) replayArgs(args []string) (*engine.Engine, error) {
	e := engine.New()
	if err := e.Load(args); err != nil {
		return nil, err
	}
	a.cfg.Logf(2, "replayed %d move(s)", e.Ply())
	return e, nil
}

func newMovesCmd(a *app) *cobra.Command {
	var square string

	cmd := &cobra.Command{
		Use:   "moves [moves...]",
		Short: "List the legal moves after the given moves",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.replayArgs(args)
			if err != nil {
				return err
			}

			var moves []chess.Move
			if square == "" {
				moves = e.GetAllAvailableMoves()
			} else {
				loc, err := engine.ParseSquare(square)
				if err != nil {
					return err
				}
				moves = e.GetAvailableMoves(loc)
			}

			notations := session.Notations(moves)
			fmt.Fprintln(a.cfg.OutputFile, strings.Join(notations, " "))
			a.cfg.Logf(1, "%d legal move(s) for %s", len(notations), e.CurrentPlayer())
			return nil
		},
	}
	cmd.Flags().StringVarP(&square, "square", "s", "", "Only list moves of the piece on this square")
	return cmd
}

func newPlayCmd(a *app) *cobra.Command {
	var analyze bool

	cmd := &cobra.Command{
		Use:   "play [moves...]",
		Short: "Print the board, FEN and state after the given moves",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, analysis, err := processing.AnalyzeGame(args)
			if err != nil {
				return err
			}
			a.cfg.Logf(2, "replayed %d move(s)", e.Ply())

			out := a.cfg.OutputFile
			fmt.Fprintln(out, e.String())
			fmt.Fprintln(out)
			fmt.Fprintf(out, "FEN: %s\n", e.FEN())
			fmt.Fprintf(out, "State: %s\n", describe(e))
			if analyze {
				printAnalysis(out, analysis)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&analyze, "analyze", false, "Also print move statistics, repetitions and material")
	return cmd
}

func printAnalysis(out io.Writer, analysis *processing.GameAnalysis) {
	fmt.Fprintf(out, "Captures: %d\n", analysis.Captures)
	fmt.Fprintf(out, "Checks: %d\n", analysis.Checks)
	fmt.Fprintf(out, "Castlings: %d\n", analysis.Castlings)
	fmt.Fprintf(out, "En passant: %d\n", analysis.EnPassants)
	fmt.Fprintf(out, "Promotions: %d (%d under)\n", analysis.Promotions, analysis.Underpromotions)
	fmt.Fprintf(out, "Most repeated position: %d time(s)\n", analysis.MaxRepetition)
	if analysis.HasInsufficientMaterial {
		fmt.Fprintln(out, "Insufficient material")
	}
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status [moves...]",
		Short: "Classify the position after the given moves",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.replayArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.cfg.OutputFile, describe(e))
			return nil
		},
	}
}

// describe summarises the position for the side to move.
func describe(e *engine.Engine) string {
	toMove := e.CurrentPlayer()
	switch state := e.GetBoardState(); state {
	case chess.Check:
		return fmt.Sprintf("%s to move, in check", toMove)
	case chess.Checkmate:
		return fmt.Sprintf("Checkmate, %s wins", toMove.Opposite())
	case chess.Stalemate:
		return "Stalemate"
	default:
		return fmt.Sprintf("%s to move", toMove)
	}
}
