package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/polyfence"
)

// solveCmd represents the solve command.
var solveCmd = &cobra.Command{
	Use:   "solve [INSTANCE]",
	Short: "find a low-cost enclosing polygon for a weighted point set",
	Long: `Read a problem instance (the N/K header followed by N "x y w" lines)
from INSTANCE, or from standard input if INSTANCE is omitted, and print the
best region found to standard output (or to the file given with --out).`,
	Run: func(cmd *cobra.Command, args []string) {
		in := os.Stdin
		if len(args) >= 1 {
			f, err := os.Open(args[0])
			check(err)
			defer f.Close()
			in = f
		}

		inst, err := polyfence.Parse(in)
		check(err)

		cfg := polyfence.DefaultConfig()
		if cfgPath != "" {
			cfg, err = polyfence.LoadConfig(cfgPath)
			check(err)
		}
		if seedVal != 0 {
			cfg.Seed = seedVal
		}
		if workersVal != 0 {
			cfg.Workers = workersVal
		}

		ctx := polyfence.NewBuildContext(verboseVal)

		sol, err := polyfence.Solve(inst.Points, inst.K, cfg, ctx)
		check(err)

		out := os.Stdout
		if outVal != "" {
			if ok, err := confirmIfExists(outVal,
				fmt.Sprintf("file name %s already exists, overwrite? [y/N]", outVal)); !ok {
				if err == nil {
					fmt.Println("aborted by user...")
				} else {
					fmt.Println("aborted,", err)
				}
				return
			}
			f, err := os.Create(outVal)
			check(err)
			defer f.Close()
			out = f
		}
		check(polyfence.WriteSolution(out, sol))

		if verboseVal {
			ctx.DumpLog("solve log")
			for _, label := range []polyfence.TimerLabel{
				polyfence.TimerGrid, polyfence.TimerGreedy, polyfence.TimerAnneal, polyfence.TimerBoundary,
			} {
				fmt.Fprintf(os.Stderr, "stage %v: %v\n", label, ctx.AccumulatedTime(label))
			}
		}
	},
}

var (
	cfgPath    string
	seedVal    int64
	workersVal int
	verboseVal bool
	outVal     string
)

func init() {
	RootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&cfgPath, "config", "", "build settings file (defaults compiled in if omitted)")
	solveCmd.Flags().Int64Var(&seedVal, "seed", 0, "override the config's random seed (0 keeps it)")
	solveCmd.Flags().IntVar(&workersVal, "workers", 0, "override the config's worker count (0 keeps it)")
	solveCmd.Flags().BoolVarP(&verboseVal, "verbose", "v", false, "log progress and per-stage timing to stderr")
	solveCmd.Flags().StringVar(&outVal, "out", "", "write the solution to this file instead of standard output")
}
