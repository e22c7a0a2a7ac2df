package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dpllsat",
		Short:         "A baseline DPLL SAT solver with a Sudoku front-end.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "path to a YAML config file merged with flags (flags take precedence)")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newSudokuCmd())
	root.AddCommand(newVersionCmd())

	return root
}
