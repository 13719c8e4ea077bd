package cli

import (
	"fmt"

	wbt "github.com/jblindsay/whitebox-tools-sub015"
	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
)

func newWatershedCmd() *cobra.Command {
	var demFP, pntrFP, pourFP, outFP string
	var esri, verbose bool

	cmd := &cobra.Command{
		Use:   "watershed",
		Short: "delineate the area draining to each pour point",
		RunE: func(cmd *cobra.Command, args []string) error {
			dem, err := loadDEM(demFP)
			if err != nil {
				return err
			}
			pour, err := loadDEM(pourFP)
			if err != nil {
				return err
			}
			tt := mmio.NewTimer()
			dirs, err := resolveDirs(dem, pntrFP, esri, verbose)
			if err != nil {
				return err
			}
			ws, err := wbt.Watershed(dem, dirs, pour)
			if err != nil {
				return err
			}
			if err := ws.Write(outFP); err != nil {
				return err
			}
			if verbose {
				printLabelSummary(ws)
				tt.Print("watershed complete")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&demFP, "dem", "i", "", "input DEM raster")
	cmd.Flags().StringVar(&pntrFP, "pntr", "", "optional pre-computed D8 pointer raster")
	cmd.Flags().StringVar(&pourFP, "pour_pts", "", "pour-point raster (outlet ids at pour cells)")
	cmd.Flags().StringVarP(&outFP, "output", "o", "", "output watershed-label raster")
	cmd.Flags().BoolVar(&esri, "esri_pntr", false, "pointer raster uses ESRI codes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress")
	cmd.MarkFlagRequired("dem")
	cmd.MarkFlagRequired("pour_pts")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newBasinsCmd() *cobra.Command {
	var demFP, pntrFP, outFP string
	var esri, verbose bool

	cmd := &cobra.Command{
		Use:   "basins",
		Short: "label every cell by the outlet it drains to",
		RunE: func(cmd *cobra.Command, args []string) error {
			dem, err := loadDEM(demFP)
			if err != nil {
				return err
			}
			tt := mmio.NewTimer()
			dirs, err := resolveDirs(dem, pntrFP, esri, verbose)
			if err != nil {
				return err
			}
			b, err := wbt.Basins(dem, dirs)
			if err != nil {
				return err
			}
			if err := b.Write(outFP); err != nil {
				return err
			}
			if verbose {
				printLabelSummary(b)
				tt.Print("basins complete")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&demFP, "dem", "i", "", "input DEM raster")
	cmd.Flags().StringVar(&pntrFP, "pntr", "", "optional pre-computed D8 pointer raster")
	cmd.Flags().StringVarP(&outFP, "output", "o", "", "output basin-label raster")
	cmd.Flags().BoolVar(&esri, "esri_pntr", false, "pointer raster uses ESRI codes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress")
	cmd.MarkFlagRequired("dem")
	cmd.MarkFlagRequired("output")
	return cmd
}

func init() {
	rootCmd.AddCommand(newWatershedCmd())
	rootCmd.AddCommand(newBasinsCmd())
}

// printLabelSummary reports the areal proportion of each label, largest first.
func printLabelSummary(g *grid.Real) {
	m, n := make(map[int]int), 0
	for _, v := range g.A {
		if g.GD.IsNodata(v) {
			continue
		}
		m[int(v)]++
		n++
	}
	fmt.Println("label proportions")
	k, v := mmaths.SortMapInt(m, false)
	for i := len(k) - 1; i >= 0; i-- {
		fmt.Printf("%10d %10.1f%%\n", k[i], float64(v[i])*100./float64(n))
	}
}
