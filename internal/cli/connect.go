package cli

import (
	"github.com/spf13/cobra"
)

var connectBidirectional bool

var connectCmd = &cobra.Command{
	Use:   "connect <src-artist> <src-title> <dst-artist> <dst-title>",
	Short: "Record a good transition between two tracks",
	Long: `Record that the first track transitions well into the second.
Both tracks must already be in the library.

Examples:
  mixmem connect "Bicep" "Glue" "Overmono" "So U Kno"
  mixmem connect --bidirectional "Bicep" "Glue" "Overmono" "So U Kno"`,
	Args: cobra.ExactArgs(4),
	RunE: runConnect,
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect <src-artist> <src-title> <dst-artist> <dst-title>",
	Short: "Remove a recorded transition",
	Args:  cobra.ExactArgs(4),
	RunE:  runDisconnect,
}

func init() {
	connectCmd.Flags().BoolVar(&connectBidirectional, "bidirectional", false, "also record the reverse transition")
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)
}

func runConnect(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	network, err := loadNetwork(s)
	if err != nil {
		return err
	}

	source, err := network.Library().IDFor(args[0], args[1])
	if err != nil {
		return err
	}
	target, err := network.Library().IDFor(args[2], args[3])
	if err != nil {
		return err
	}

	if err := network.AddConnection(source, target, connectBidirectional); err != nil {
		return err
	}
	if err := s.SaveNetwork(network); err != nil {
		return err
	}

	arrow := "->"
	if connectBidirectional {
		arrow = "<->"
	}
	Success("Connection added: '%s - %s' %s '%s - %s'", args[0], args[1], arrow, args[2], args[3])
	return nil
}

func runDisconnect(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	network, err := loadNetwork(s)
	if err != nil {
		return err
	}

	source, err := network.Library().IDFor(args[0], args[1])
	if err != nil {
		return err
	}
	target, err := network.Library().IDFor(args[2], args[3])
	if err != nil {
		return err
	}

	if err := network.RemoveConnection(source, target); err != nil {
		return err
	}
	if err := s.SaveNetwork(network); err != nil {
		return err
	}

	Success("Connection removed: '%s - %s' -> '%s - %s'", args[0], args[1], args[2], args[3])
	return nil
}
