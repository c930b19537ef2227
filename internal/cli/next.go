package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"mixmem/internal/core"
	"mixmem/internal/prompt"
)

var nextPick bool

var nextCmd = &cobra.Command{
	Use:   "next <artist> <title>",
	Short: "Suggest what to play after a track",
	Long: `Suggest next tracks based on the transitions recorded from the
currently playing track.

Examples:
  mixmem next "Bicep" "Glue"
  mixmem next --pick "Bicep" "Glue"`,
	Args: cobra.ExactArgs(2),
	RunE: runNext,
}

func init() {
	nextCmd.Flags().BoolVar(&nextPick, "pick", false, "choose a suggestion interactively")
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	network, err := loadNetwork(s)
	if err != nil {
		return err
	}

	nowPlaying := core.Track{Artist: args[0], Title: args[1]}
	id, err := network.Library().IDFor(nowPlaying.Artist, nowPlaying.Title)
	if err != nil {
		return err
	}

	neighborIDs, err := network.Neighbors(id)
	if err != nil {
		return err
	}

	suggestions := make([]core.Track, 0, len(neighborIDs))
	for _, nid := range neighborIDs {
		track, err := network.Library().Get(nid)
		if err != nil {
			return err
		}
		suggestions = append(suggestions, track)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(suggestions)
	}

	if len(suggestions) == 0 {
		NormalF("No recommendations found for %s.", nowPlaying)
		return nil
	}

	if nextPick && prompt.IsTerminal() {
		selected, err := prompt.PickTrack("Play next after "+nowPlaying.String()+":", suggestions)
		if err != nil {
			return err
		}
		if selected != nil {
			Success("Next up: %s", selected)
		}
		return nil
	}

	Heading("After playing " + nowPlaying.String() + ", consider:")
	for _, track := range suggestions {
		NormalF("  %s", track)
	}
	return nil
}
