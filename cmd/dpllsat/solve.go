package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kenny-R/dpllsat/config"
	"github.com/Kenny-R/dpllsat/diag"
	"github.com/Kenny-R/dpllsat/dimacs"
	"github.com/Kenny-R/dpllsat/solver"
)

func newSolveCmd() *cobra.Command {
	var showAssignment bool
	var verbose bool
	var models uint

	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Decide satisfiability of a DIMACS-CNF formula.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := loadConfigMap(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbose") {
				raw["verbose"] = verbose
			}
			if cmd.Flags().Changed("assignment") {
				raw["assignment"] = showAssignment
			}
			if cmd.Flags().Changed("models") {
				raw["models"] = models
			}

			cfg, err := config.Decode(raw)
			if err != nil {
				return err
			}
			return runSolve(cmd, cfg, args[0])
		},
	}

	cmd.Flags().BoolVarP(&showAssignment, "assignment", "a", false, "print the satisfying assignment")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable per-decision/per-conflict tracing")
	cmd.Flags().UintVarP(&models, "models", "m", 1, "number of distinct models to enumerate (SAT only)")

	return cmd
}

func runSolve(cmd *cobra.Command, cfg *config.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(diag.ErrIoFailure, "opening %s: %s", path, err)
	}
	defer f.Close()

	formula, err := dimacs.Parse(context.Background(), f)
	if err != nil {
		return err
	}

	wanted := cfg.Models
	if wanted == 0 {
		wanted = 1
	}

	models, sat := solveMany(cfg, formula, wanted)
	if !sat {
		fmt.Fprintln(cmd.OutOrStdout(), "UNSATISFIABLE")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "SATISFIABLE")
	if cfg.Assignment {
		for _, model := range models {
			fmt.Fprintln(cmd.OutOrStdout(), formatAssignment(model))
		}
	}
	return nil
}

// solveMany enumerates up to n distinct satisfying models of formula by
// blocking each model found and re-solving from a fresh Solver, the
// orthogonal multi-model dump preserved from the teacher's SolveMany. Each
// solve is an independent, non-incremental run of the same core.
func solveMany(cfg *config.Config, formula *dimacs.Formula, n uint) ([]map[int]bool, bool) {
	var found []map[int]bool
	blocking := [][]int{}

	for uint(len(found)) < n {
		s := solver.New(cfg, formula.NVars)
		for _, c := range formula.Clauses {
			s.AddClause(c)
		}
		for _, b := range blocking {
			s.AddClause(b)
		}

		cfg.Logger.WithFields(logrus.Fields{
			"vars":    s.NVars(),
			"constrs": s.NConstrs(),
		}).Debug("starting solve")

		sat, model := s.Solve(context.Background())
		if !sat {
			break
		}
		found = append(found, model)
		blocking = append(blocking, negate(model))
	}

	return found, len(found) > 0
}

// negate builds the blocking clause that excludes exactly model: the
// disjunction of each assigned variable's opposite literal.
func negate(model map[int]bool) []int {
	vars := make([]int, 0, len(model))
	for v := range model {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	clause := make([]int, 0, len(vars))
	for _, v := range vars {
		if model[v] {
			clause = append(clause, -v)
		} else {
			clause = append(clause, v)
		}
	}
	return clause
}

func formatAssignment(model map[int]bool) string {
	vars := make([]int, 0, len(model))
	for v := range model {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	out := ""
	for i, v := range vars {
		if i > 0 {
			out += " "
		}
		if !model[v] {
			out += "-"
		}
		out += fmt.Sprintf("%d", v)
	}
	return out
}
