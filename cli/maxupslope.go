package cli

import (
	"fmt"

	wbt "github.com/jblindsay/whitebox-tools-sub015"
	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
)

func newMaxUpslopeValueCmd() *cobra.Command {
	var demFP, pntrFP, valFP, outFP string
	var esri, verbose bool

	cmd := &cobra.Command{
		Use:   "maxupslopevalue",
		Short: "propagate the maximum upslope value of an auxiliary raster down the D8 network",
		RunE: func(cmd *cobra.Command, args []string) error {
			dem, err := loadDEM(demFP)
			if err != nil {
				return err
			}
			vg, err := loadDEM(valFP)
			if err != nil {
				return err
			}
			if !dem.GD.Compatible(vg.GD) {
				return fmt.Errorf("values raster extent does not match DEM: %s", valFP)
			}
			tt := mmio.NewTimer()
			dirs, err := resolveDirs(dem, pntrFP, esri, verbose)
			if err != nil {
				return err
			}
			acc, err := wbt.Accumulate(dirs, dem, vg.A, wbt.AccumMax)
			if err != nil {
				return err
			}
			if err := writeValues(dem.GD, acc, outFP); err != nil {
				return err
			}
			if verbose {
				tt.Print("maxupslopevalue complete")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&demFP, "dem", "i", "", "input DEM raster")
	cmd.Flags().StringVar(&pntrFP, "pntr", "", "optional pre-computed D8 pointer raster")
	cmd.Flags().StringVar(&valFP, "values", "", "values raster to propagate")
	cmd.Flags().StringVarP(&outFP, "output", "o", "", "output raster")
	cmd.Flags().BoolVar(&esri, "esri_pntr", false, "pointer raster uses ESRI codes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress")
	cmd.MarkFlagRequired("dem")
	cmd.MarkFlagRequired("values")
	cmd.MarkFlagRequired("output")
	return cmd
}

func init() { rootCmd.AddCommand(newMaxUpslopeValueCmd()) }
