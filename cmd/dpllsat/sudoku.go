package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kenny-R/dpllsat/config"
	"github.com/Kenny-R/dpllsat/diag"
	"github.com/Kenny-R/dpllsat/solver"
	"github.com/Kenny-R/dpllsat/sudoku"
)

func newSudokuCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sudoku <path>",
		Short: "Solve a 9x9 Sudoku puzzle via CNF encoding.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := loadConfigMap(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbose") {
				raw["verbose"] = verbose
			}

			cfg, err := config.Decode(raw)
			if err != nil {
				return err
			}
			return runSudoku(cmd, cfg, args[0])
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable per-decision/per-conflict tracing")

	return cmd
}

func runSudoku(cmd *cobra.Command, cfg *config.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(diag.ErrIoFailure, "opening %s: %s", path, err)
	}
	defer f.Close()

	grid, err := sudoku.ParseGrid(context.Background(), f)
	if err != nil {
		return err
	}

	clauses, nVars := sudoku.Encode(grid)
	s := solver.New(cfg, nVars)
	for _, c := range clauses {
		s.AddClause(c)
	}

	cfg.Logger.WithFields(logrus.Fields{
		"vars":    s.NVars(),
		"constrs": s.NConstrs(),
	}).Debug("starting solve")

	sat, model := s.Solve(context.Background())
	if !sat {
		fmt.Fprintln(cmd.OutOrStdout(), "UNSATISFIABLE")
		return nil
	}

	solved, err := sudoku.Decode(model)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "SATISFIABLE")
	fmt.Fprint(cmd.OutOrStdout(), solved.String())
	return nil
}
