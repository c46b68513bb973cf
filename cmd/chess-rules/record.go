// record.go - Hosted game recording and export
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-rules-go/internal/session"
)

type recordOptions struct {
	white   string
	black   string
	resume  string
	promote string
}

func newRecordCmd(a *app) *cobra.Command {
	opts := &recordOptions{}

	cmd := &cobra.Command{
		Use:   "record [moves...]",
		Short: "Play moves as a hosted game and print it as YAML",
		Long: `Creates a game between --white and --black, or continues the exported game
read from --resume, submits the moves in turn and writes the game as YAML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("promote") {
				a.cfg.Session.DefaultPromotion = opts.promote
				if err := a.cfg.Session.Validate(); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			svc := session.NewService(session.NewMemoryStore(), a.cfg)

			var g *session.Game
			var err error
			if opts.resume != "" {
				g, err = importGame(cmd, svc, opts.resume)
			} else {
				g, err = svc.NewGame(ctx, opts.white, opts.black)
			}
			if err != nil {
				return err
			}

			for _, notation := range args {
				player := g.White
				if len(g.Moves)%2 == 1 {
					player = g.Black
				}
				if g, err = svc.SubmitMove(ctx, g.ID, player, notation, ""); err != nil {
					return err
				}
			}

			a.cfg.Logf(1, "%s", g.Status)
			return svc.Export(ctx, g.ID, a.cfg.OutputFile)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.white, "white", "White", "Name of the White player")
	flags.StringVar(&opts.black, "black", "Black", "Name of the Black player")
	flags.StringVar(&opts.resume, "resume", "", "Continue the exported game in this file")
	flags.StringVar(&opts.promote, "promote", "", "Piece for unsuffixed promotions: Q, R, B or N")
	return cmd
}

func importGame(cmd *cobra.Command, svc *session.Service, path string) (*session.Game, error) {
	f, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, fmt.Errorf("opening game %s: %w", path, err)
	}
	defer f.Close()
	return svc.Import(cmd.Context(), f)
}
