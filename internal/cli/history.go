package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mixmem/internal/core"
	"mixmem/internal/history"
	"mixmem/internal/prompt"
)

var (
	historyDir   string
	historySince string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Work with Rekordbox history playlists",
}

var historyLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Build the network from Rekordbox history playlists",
	Long: `Read exported Rekordbox history .m3u8 files, merge their tracks into
the library, and survey each played transition interactively. Confirmed
transitions become connections.

Examples:
  mixmem history load
  mixmem history load --dir ~/rekordbox_histories --since 2023-07-01`,
	RunE: runHistoryLoad,
}

func init() {
	historyLoadCmd.Flags().StringVar(&historyDir, "dir", "", "directory of exported history .m3u8 files")
	historyLoadCmd.Flags().StringVar(&historySince, "since", "", "only read playlists from this date on (YYYY-MM-DD)")
	historyCmd.AddCommand(historyLoadCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryLoad(cmd *cobra.Command, args []string) error {
	dir := historyDir
	if dir == "" {
		dir = cfg.History.Dir
	}

	var minDate time.Time
	if historySince != "" {
		var err error
		minDate, err = time.Parse("2006-01-02", historySince)
		if err != nil {
			return fmt.Errorf("invalid --since date %q: %w", historySince, err)
		}
	}

	playlists, err := history.LoadSince(dir, minDate)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	stored, err := s.LoadLibrary()
	if err != nil {
		return err
	}

	// Merge every playlist's tracks into the stored library, then hang
	// the existing connections back onto the extended library.
	libraries := []*core.Library{stored}
	for _, p := range playlists {
		lib, err := p.Library()
		if err != nil {
			return err
		}
		libraries = append(libraries, lib)
	}
	merged := core.MergeAll(libraries)

	connections, err := s.LoadConnections()
	if err != nil {
		return err
	}
	network, err := core.NewNetworkWithConnections(merged, connections)
	if err != nil {
		return err
	}

	NormalF("Loaded %d playlists into a library of %d tracks.", len(playlists), merged.Len())

	for _, playlist := range playlists {
		Heading(fmt.Sprintf("Transitions survey: %s", playlist.Name))
		Dim("Mark the transitions that worked from memory.")

		for _, tr := range playlist.Transitions() {
			ok, err := prompt.Confirm(fmt.Sprintf("%s -> %s?", tr.From, tr.To))
			if err != nil {
				return err
			}
			if !ok {
				continue
			}

			source, err := merged.IDFor(tr.From.Artist, tr.From.Title)
			if err != nil {
				return err
			}
			target, err := merged.IDFor(tr.To.Artist, tr.To.Title)
			if err != nil {
				return err
			}
			if err := network.AddConnection(source, target, false); err != nil {
				return err
			}
		}
	}

	ok, err := prompt.Confirm(fmt.Sprintf("Save network to database %s?", cfg.Database.Path))
	if err != nil {
		return err
	}
	if !ok {
		NormalF("Discarded.")
		return nil
	}

	if err := s.SaveNetwork(network); err != nil {
		return err
	}
	Success("Saved %s.", network)
	return nil
}
