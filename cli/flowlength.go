package cli

import (
	"fmt"

	wbt "github.com/jblindsay/whitebox-tools-sub015"
	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
)

func newFlowpathLengthCmd() *cobra.Command {
	var demFP, pntrFP, wgtFP, outFP string
	var esri, verbose bool

	cmd := &cobra.Command{
		Use:   "downslopeflowpathlength",
		Short: "measure the D8 flowpath distance from each cell to its outlet",
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
			var wgt *grid.Real
			if wgtFP != "" {
				w, err := loadDEM(wgtFP)
				if err != nil {
					return err
				}
				if !dem.GD.Compatible(w.GD) {
					return fmt.Errorf("weights raster extent does not match DEM: %s", wgtFP)
				}
				wgt = w
			}
			fl, err := wbt.DownslopeFlowpathLength(dem, dirs, wgt)
			if err != nil {
				return err
			}
			if err := fl.Write(outFP); err != nil {
				return err
			}
			if verbose {
				tt.Print("downslopeflowpathlength complete")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&demFP, "dem", "i", "", "input DEM raster")
	cmd.Flags().StringVar(&pntrFP, "pntr", "", "optional pre-computed D8 pointer raster")
	cmd.Flags().StringVar(&wgtFP, "weights", "", "optional per-step weights raster")
	cmd.Flags().StringVarP(&outFP, "output", "o", "", "output flowpath-length raster")
	cmd.Flags().BoolVar(&esri, "esri_pntr", false, "pointer raster uses ESRI codes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress")
	cmd.MarkFlagRequired("dem")
	cmd.MarkFlagRequired("output")
	return cmd
}

func init() { rootCmd.AddCommand(newFlowpathLengthCmd()) }
