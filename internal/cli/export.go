package cli

import (
	"github.com/spf13/cobra"

	"mixmem/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the track network as JSON",
	Long: `Export the track network as a node/link JSON document ready for
visualizing with d3.js.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "path to save the JSON file (default: ./web/track_network.json)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	network, err := loadNetwork(s)
	if err != nil {
		return err
	}

	output := exportOutput
	if output == "" {
		output = cfg.Export.Output
	}

	doc, err := export.FromNetwork(network)
	if err != nil {
		return err
	}
	if err := doc.WriteFile(output); err != nil {
		return err
	}

	Success("Track network exported to %s (%d tracks, %d connections).",
		output, network.TrackCount(), network.ConnectionCount())
	return nil
}
