package cli

import (
	"fmt"

	wbt "github.com/jblindsay/whitebox-tools-sub015"
	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
)

func newD8PointerCmd() *cobra.Command {
	var demFP, outFP string
	var esri, verbose bool

	cmd := &cobra.Command{
		Use:   "d8pointer",
		Short: "compute the D8 flow-direction (pointer) raster of a DEM",
		RunE: func(cmd *cobra.Command, args []string) error {
			dem, err := loadDEM(demFP)
			if err != nil {
				return err
			}
			tt := mmio.NewTimer()
			dirs, npits, err := wbt.FlowDirections(dem, 0, verbose)
			if err != nil {
				return err
			}
			if npits > 0 {
				fmt.Printf(" WARNING: %d interior pit cell(s) detected; the DEM does not appear to be hydrologically corrected (see the fill tool)\n", npits)
			}
			if err := wbt.PointerGrid(dem, dirs, convention(esri)).Write(outFP); err != nil {
				return err
			}
			if verbose {
				tt.Print("d8pointer complete")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&demFP, "dem", "i", "", "input DEM raster")
	cmd.Flags().StringVarP(&outFP, "output", "o", "", "output pointer raster")
	cmd.Flags().BoolVar(&esri, "esri_pntr", false, "write ESRI pointer codes instead of the Whitebox convention")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress")
	cmd.MarkFlagRequired("dem")
	cmd.MarkFlagRequired("output")
	return cmd
}

func init() { rootCmd.AddCommand(newD8PointerCmd()) }
