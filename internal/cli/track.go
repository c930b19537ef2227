package cli

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"mixmem/internal/core"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Manage the track library",
	Long:  `Commands for adding, removing, and listing library tracks.`,
}

var trackAddCmd = &cobra.Command{
	Use:   "add <artist> <title>",
	Short: "Add a track to the library",
	Long: `Add a track to the library.

Examples:
  mixmem track add "Bicep" "Glue"`,
	Args: cobra.ExactArgs(2),
	RunE: runTrackAdd,
}

var trackRemoveCmd = &cobra.Command{
	Use:   "remove <artist> <title>",
	Short: "Remove a track from the library",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrackRemove,
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all library tracks",
	RunE:  runTrackList,
}

func init() {
	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackRemoveCmd)
	trackCmd.AddCommand(trackListCmd)
	rootCmd.AddCommand(trackCmd)
}

func runTrackAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	library, err := s.LoadLibrary()
	if err != nil {
		return err
	}

	track := core.Track{Artist: args[0], Title: args[1]}
	if err := library.Add(track); err != nil {
		return err
	}
	if err := s.SaveLibrary(library); err != nil {
		return err
	}

	Success("Added %s (id %d).", track, track.ID())
	return nil
}

func runTrackRemove(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	network, err := loadNetwork(s)
	if err != nil {
		return err
	}
	library := network.Library()

	id, err := library.IDFor(args[0], args[1])
	if err != nil {
		return err
	}

	// Drop the track's connections along with the track itself.
	for _, c := range network.Connections() {
		if c.Source == id || c.Target == id {
			if err := network.RemoveConnection(c.Source, c.Target); err != nil {
				return err
			}
		}
	}
	if err := library.Remove(id); err != nil {
		return err
	}

	if err := s.SaveLibrary(library); err != nil {
		return err
	}
	if err := s.SaveConnections(network.Connections()); err != nil {
		return err
	}

	Success("Removed %s - %s.", args[0], args[1])
	return nil
}

func runTrackList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	library, err := s.LoadLibrary()
	if err != nil {
		return err
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(library.Tracks())
	}

	if library.Len() == 0 {
		NormalF("Library is empty.")
		return nil
	}

	table := NewTable("ID", "ARTIST", "TITLE")
	for _, track := range library.Tracks() {
		table.Row(strconv.FormatInt(int64(track.ID()), 10), track.Artist, track.Title)
	}
	table.Flush()

	if Verbose() {
		Dim("%d tracks", library.Len())
	}
	return nil
}
