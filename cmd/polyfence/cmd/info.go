package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/polyfence"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info [INSTANCE]",
	Short: "show parsed information about an instance",
	Long: `Read a problem instance from INSTANCE, or from standard input if
INSTANCE is omitted, check it for consistency, then print a short summary:
point count, K, bounding box and weight totals. Does not run the solver.`,
	Run: doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func doInfo(cmd *cobra.Command, args []string) {
	in := os.Stdin
	if len(args) >= 1 {
		f, err := os.Open(args[0])
		check(err)
		defer f.Close()
		in = f
	}

	inst, err := polyfence.Parse(in)
	check(err)

	minX, minY, maxX, maxY := inst.Points[0].X, inst.Points[0].Y, inst.Points[0].X, inst.Points[0].Y
	var posWeight, negWeight float64
	for _, p := range inst.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		if p.W >= 0 {
			posWeight += p.W
		} else {
			negWeight += p.W
		}
	}

	fmt.Printf("points:        %d\n", len(inst.Points))
	fmt.Printf("K:             %d\n", inst.K)
	fmt.Printf("bounding box:  [%v, %v] x [%v, %v]\n", minX, minY, maxX, maxY)
	fmt.Printf("weight sum:    %v (positive %v, negative %v)\n", posWeight+negWeight, posWeight, negWeight)
}
