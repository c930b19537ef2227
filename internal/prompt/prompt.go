// Package prompt wraps the interactive terminal prompts used by the CLI.
package prompt

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"mixmem/internal/core"
)

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Confirm asks a yes/no question and returns the answer.
func Confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt cancelled: %w", err)
	}
	return ok, nil
}

// PickTrack shows a picker over the given tracks and returns the
// selected one, or nil if the list is empty.
func PickTrack(title string, tracks []core.Track) (*core.Track, error) {
	if len(tracks) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[int], 0, len(tracks))
	for i, t := range tracks {
		options = append(options, huh.NewOption(t.String(), i))
	}

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &tracks[selected], nil
}
