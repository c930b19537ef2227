// Package history ingests Rekordbox history playlists exported as .m3u8
// files. A history playlist is ordered by play time, so adjacent tracks
// record the transitions a DJ made during a set.
package history

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"mixmem/internal/core"
	"mixmem/internal/errors"
)

// Exported filenames look like "HISTORY 2023-07-28.m3u8" or
// "HISTORY 2023-07-28 (4).m3u8" when several sets share a date.
var filenamePattern = regexp.MustCompile(`^HISTORY (\d{4}-\d{2}-\d{2}) ?(\((\d+)\))?\.m3u8$`)

// File is a validated history playlist file: its path plus the date and
// sequence number embedded in the name.
type File struct {
	Path string
	Name string
	Date time.Time
	Seq  int
}

// ParseFilename validates a history file path and extracts its date and
// sequence number. The sequence number defaults to 1 when absent.
func ParseFilename(path string) (File, error) {
	name := filepath.Base(path)
	match := filenamePattern.FindStringSubmatch(name)
	if match == nil {
		return File{}, fmt.Errorf("%w: file name %q does not match the history pattern",
			errors.ErrMalformedHistory, name)
	}

	date, err := time.Parse("2006-01-02", match[1])
	if err != nil {
		return File{}, fmt.Errorf("%w: invalid date in %q: %v", errors.ErrMalformedHistory, name, err)
	}

	seq := 1
	if match[3] != "" {
		seq, err = strconv.Atoi(match[3])
		if err != nil {
			return File{}, fmt.Errorf("%w: invalid sequence number in %q: %v",
				errors.ErrMalformedHistory, name, err)
		}
	}

	return File{Path: path, Name: name, Date: date, Seq: seq}, nil
}

// Transition is one adjacent pair of tracks in a playlist: From was
// followed by To.
type Transition struct {
	From core.Track
	To   core.Track
}

// Playlist is one history playlist: its tracks in play order plus the
// metadata taken from the file name.
type Playlist struct {
	Name   string
	Date   time.Time
	Seq    int
	Tracks []core.Track
}

// Load reads a history playlist from its .m3u8 file.
func Load(path string) (Playlist, error) {
	file, err := ParseFilename(path)
	if err != nil {
		return Playlist{}, err
	}

	tracks, err := ParseM3U(path)
	if err != nil {
		return Playlist{}, err
	}

	return Playlist{Name: file.Name, Date: file.Date, Seq: file.Seq, Tracks: tracks}, nil
}

// Library builds a library from the playlist's tracks. A track played
// twice in one set appears once.
func (p Playlist) Library() (*core.Library, error) {
	lib := core.NewLibrary()
	for _, t := range p.Tracks {
		if err := lib.Add(t); err != nil {
			if stderrors.Is(err, errors.ErrDuplicateTrack) {
				continue
			}
			return nil, err
		}
	}
	return lib, nil
}

// Transitions pairs each track with the next one played: the ordered
// list [t0..tn] yields [(t0,t1), (t1,t2), ..., (t(n-1),tn)].
func (p Playlist) Transitions() []Transition {
	if len(p.Tracks) < 2 {
		return nil
	}
	transitions := make([]Transition, 0, len(p.Tracks)-1)
	for i := 0; i < len(p.Tracks)-1; i++ {
		transitions = append(transitions, Transition{From: p.Tracks[i], To: p.Tracks[i+1]})
	}
	return transitions
}

// ParseM3U reads the ordered track list from an m3u8 playlist. Each
// "#EXTINF:<secs>,Artist - Title" line yields one track; the part before
// the first " - " is the artist.
func ParseM3U(path string) ([]core.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist %s: %w", path, err)
	}
	defer f.Close()

	var tracks []core.Track
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#EXTINF") {
			continue
		}

		_, display, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: EXTINF line without display name: %q",
				errors.ErrMalformedHistory, line)
		}
		artist, title, ok := strings.Cut(display, " - ")
		if !ok {
			return nil, fmt.Errorf("%w: display name without artist separator: %q",
				errors.ErrMalformedHistory, display)
		}

		tracks = append(tracks, core.Track{Artist: artist, Title: title})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlist %s: %w", path, err)
	}

	return tracks, nil
}

// LoadSince loads every history playlist in a directory with a date at
// or after minDate, sorted ascending by (date, sequence number). A zero
// minDate loads everything.
func LoadSince(dir string, minDate time.Time) ([]Playlist, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.m3u8"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var playlists []Playlist
	for _, path := range paths {
		file, err := ParseFilename(path)
		if err != nil {
			return nil, err
		}
		if !minDate.IsZero() && file.Date.Before(minDate) {
			continue
		}
		playlist, err := Load(path)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}

	if len(playlists) == 0 {
		return nil, fmt.Errorf("%w: no history playlists found in %s", errors.ErrMalformedHistory, dir)
	}

	sort.Slice(playlists, func(i, j int) bool {
		if !playlists[i].Date.Equal(playlists[j].Date) {
			return playlists[i].Date.Before(playlists[j].Date)
		}
		return playlists[i].Seq < playlists[j].Seq
	})

	return playlists, nil
}
