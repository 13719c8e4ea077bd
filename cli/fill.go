package cli

import (
	wbt "github.com/jblindsay/whitebox-tools-sub015"
	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
)

func newFillCmd() *cobra.Command {
	var demFP, outFP string
	var eps float64
	var verbose bool

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "fill the depressions of a DEM by priority flood",
		RunE: func(cmd *cobra.Command, args []string) error {
			dem, err := loadDEM(demFP)
			if err != nil {
				return err
			}
			tt := mmio.NewTimer()
			filled, _ := wbt.FillDepressions(dem, eps, verbose)
			if verbose {
				tt.Lap("depression filling complete")
			}
			if err := filled.Write(outFP); err != nil {
				return err
			}
			if verbose {
				tt.Print("fill complete")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&demFP, "dem", "i", "", "input DEM raster")
	cmd.Flags().StringVarP(&outFP, "output", "o", "", "output (filled) raster")
	cmd.Flags().Float64Var(&eps, "epsilon", wbt.DefaultEpsilon, "fill increment applied above each pour point")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress")
	cmd.MarkFlagRequired("dem")
	cmd.MarkFlagRequired("output")
	return cmd
}

func init() { rootCmd.AddCommand(newFillCmd()) }
