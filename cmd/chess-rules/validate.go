// validate.go - Parallel validation of move list files
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

func newValidateCmd(a *app) *cobra.Command {
	var duplicates, samePly bool
	var format string

	cmd := &cobra.Command{
		Use:   "validate <files...>",
		Short: "Replay move list files in parallel and report where each stops",
		Long: `Each file is either an exported game (YAML) or plain text holding
whitespace separated moves. Lines starting with '#' are ignored in text files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			writer, err := output.NewWriter(format, a.cfg.OutputFile)
			if err != nil {
				return err
			}

			items := make([]worker.WorkItem, 0, len(args))
			unreadable := 0
			for i, name := range args {
				moves, err := readMoveFile(name)
				if err != nil {
					fmt.Fprintf(a.cfg.LogFile, "Error reading %s: %v\n", name, err)
					unreadable++
					continue
				}
				items = append(items, worker.WorkItem{Index: i, Name: name, Moves: moves})
			}

			numWorkers := a.cfg.Worker.NumWorkers()
			pool := worker.NewPool(worker.Replay,
				worker.WithWorkers(numWorkers),
				worker.WithBufferSize(a.cfg.Worker.Buffer(numWorkers)),
			)
			a.cfg.Logf(2, "validating %d file(s) with %d worker(s)", len(items), numWorkers)
			results := pool.Run(cmd.Context(), items)

			var detector *hashing.DuplicateDetector
			if duplicates {
				detector = hashing.NewDuplicateDetector(samePly)
			}

			rejected := 0
			for _, r := range results {
				rec := output.FromResult(r)
				if r.Err != nil {
					rejected++
				} else if detector != nil {
					if first, dup := detector.CheckAndAdd(r.Sig); dup {
						rec.DuplicateOf = first.Name
					}
				}
				if err := writer.WriteRecord(rec); err != nil {
					return err
				}
			}
			if err := writer.Close(); err != nil {
				return err
			}
			if detector != nil {
				a.cfg.Logf(1, "%d distinct position(s), %d duplicate(s)", detector.UniqueCount(), detector.DuplicateCount())
			}
			a.cfg.Logf(1, "%d of %d file(s) valid", len(results)-rejected, len(args))

			if err := cmd.Context().Err(); err != nil {
				return err
			}
			if failed := rejected + unreadable; failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&duplicates, "duplicates", "D", false, "Report files that end in the same position")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Report format: text, json or yaml")
	cmd.Flags().BoolVar(&samePly, "same-ply", false, "With --duplicates, also require the same number of moves")
	return cmd
}

// readMoveFile loads the move list of an exported game, or failing that
// reads the file as plain text moves.
func readMoveFile(name string) ([]string, error) {
	data, err := os.ReadFile(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}

	var g session.Game
	if err := yaml.Unmarshal(data, &g); err == nil {
		return g.Notations(), nil
	}

	var moves []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		moves = append(moves, strings.Fields(line)...)
	}
	return moves, scanner.Err()
}
