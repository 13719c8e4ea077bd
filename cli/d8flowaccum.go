package cli

import (
	"fmt"

	wbt "github.com/jblindsay/whitebox-tools-sub015"
	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
)

func newD8FlowAccumCmd() *cobra.Command {
	var demFP, pntrFP, wgtFP, outFP string
	var esri, verbose bool

	cmd := &cobra.Command{
		Use:   "d8flowaccum",
		Short: "accumulate flow (contributing cell counts, optionally weighted) over the D8 network",
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

			vals := wbt.UnitValues(dem)
			if wgtFP != "" {
				wgt, err := loadDEM(wgtFP)
				if err != nil {
					return err
				}
				if !dem.GD.Compatible(wgt.GD) {
					return fmt.Errorf("weights raster extent does not match DEM: %s", wgtFP)
				}
				nneg := 0
				for i := range vals {
					if dem.GD.IsNodata(dem.A[i]) {
						continue
					}
					if w := wgt.A[i]; !wgt.GD.IsNodata(w) {
						if w < 0. {
							nneg++
						}
						vals[i] = w
					}
				}
				if nneg > 0 {
					fmt.Printf(" WARNING: %d negative weight(s) encountered\n", nneg)
				}
			}

			acc, err := wbt.Accumulate(dirs, dem, vals, wbt.AccumSum)
			if err != nil {
				return err
			}
			if err := writeValues(dem.GD, acc, outFP); err != nil {
				return err
			}
			if verbose {
				tt.Print("d8flowaccum complete")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&demFP, "dem", "i", "", "input DEM raster")
	cmd.Flags().StringVar(&pntrFP, "pntr", "", "optional pre-computed D8 pointer raster")
	cmd.Flags().StringVar(&wgtFP, "weights", "", "optional weights raster")
	cmd.Flags().StringVarP(&outFP, "output", "o", "", "output accumulation raster")
	cmd.Flags().BoolVar(&esri, "esri_pntr", false, "pointer raster uses ESRI codes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress")
	cmd.MarkFlagRequired("dem")
	cmd.MarkFlagRequired("output")
	return cmd
}

func init() { rootCmd.AddCommand(newD8FlowAccumCmd()) }
