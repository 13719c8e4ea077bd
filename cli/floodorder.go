package cli

import (
	wbt "github.com/jblindsay/whitebox-tools-sub015"
	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
)

func newFloodOrderCmd() *cobra.Command {
	var demFP, outFP string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "floodorder",
		Short: "record the order of inundation of each cell during the priority flood",
		RunE: func(cmd *cobra.Command, args []string) error {
			dem, err := loadDEM(demFP)
			if err != nil {
				return err
			}
			tt := mmio.NewTimer()
			ord, _ := wbt.FloodOrder(dem, verbose)
			if err := ord.Write(outFP); err != nil {
				return err
			}
			if verbose {
				tt.Print("floodorder complete")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&demFP, "dem", "i", "", "input DEM raster")
	cmd.Flags().StringVarP(&outFP, "output", "o", "", "output flood-order raster")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress")
	cmd.MarkFlagRequired("dem")
	cmd.MarkFlagRequired("output")
	return cmd
}

func init() { rootCmd.AddCommand(newFloodOrderCmd()) }
