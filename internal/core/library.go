package core

import (
	"fmt"
	"sort"

	"mixmem/internal/errors"
)

// Library is a collection of music tracks keyed by track ID.
type Library struct {
	tracks map[TrackID]Track
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{tracks: make(map[TrackID]Track)}
}

// FromTracks builds a library from a list of tracks. Duplicate
// (artist, title) pairs in the input are rejected.
func FromTracks(tracks []Track) (*Library, error) {
	lib := NewLibrary()
	for _, t := range tracks {
		if err := lib.Add(t); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// Restore builds a library directly from persisted (id, track) pairs,
// preserving the stored identifiers exactly.
func Restore(entries map[TrackID]Track) *Library {
	lib := NewLibrary()
	for id, t := range entries {
		lib.tracks[id] = t
	}
	return lib
}

// Len returns the number of tracks in the library.
func (l *Library) Len() int {
	return len(l.tracks)
}

// Get returns the track with the given ID.
func (l *Library) Get(id TrackID) (Track, error) {
	t, ok := l.tracks[id]
	if !ok {
		return Track{}, fmt.Errorf("%w: id %d", errors.ErrMissingTrack, id)
	}
	return t, nil
}

// Has reports whether the library contains the given ID.
func (l *Library) Has(id TrackID) bool {
	_, ok := l.tracks[id]
	return ok
}

// Add adds a track to the library. Duplicates are detected by value, not
// by ID, so an ID collision between distinct tracks is also rejected here.
func (l *Library) Add(track Track) error {
	for _, existing := range l.tracks {
		if existing == track {
			return fmt.Errorf("%w: %s", errors.ErrDuplicateTrack, track)
		}
	}
	if _, ok := l.tracks[track.ID()]; ok {
		return fmt.Errorf("%w: id collision for %s", errors.ErrDuplicateTrack, track)
	}
	l.tracks[track.ID()] = track
	return nil
}

// Remove deletes the track with the given ID.
func (l *Library) Remove(id TrackID) error {
	if _, ok := l.tracks[id]; !ok {
		return fmt.Errorf("%w: id %d", errors.ErrMissingTrack, id)
	}
	delete(l.tracks, id)
	return nil
}

// IDFor returns the ID of the track with the given artist and title.
// Linear scan; fine at personal-library scale.
func (l *Library) IDFor(artist, title string) (TrackID, error) {
	for id, t := range l.tracks {
		if t.Artist == artist && t.Title == title {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", errors.ErrMissingTrack, Track{Artist: artist, Title: title})
}

// IDs returns all track IDs, sorted ascending.
func (l *Library) IDs() []TrackID {
	ids := make([]TrackID, 0, len(l.tracks))
	for id := range l.tracks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Tracks returns all tracks, sorted by ID.
func (l *Library) Tracks() []Track {
	tracks := make([]Track, 0, len(l.tracks))
	for _, id := range l.IDs() {
		tracks = append(tracks, l.tracks[id])
	}
	return tracks
}

// Merge returns a new library holding the union of both libraries' track
// values, deduplicated by value with IDs recomputed. Regenerating from
// values avoids silently dropping distinct tracks whose IDs collide,
// which an ID-keyed map union would do.
func (l *Library) Merge(other *Library) *Library {
	merged := NewLibrary()
	for _, t := range l.tracks {
		merged.tracks[t.ID()] = t
	}
	for _, t := range other.tracks {
		merged.tracks[t.ID()] = t
	}
	return merged
}

// MergeAll merges many libraries into one.
func MergeAll(libraries []*Library) *Library {
	merged := NewLibrary()
	for _, lib := range libraries {
		merged = merged.Merge(lib)
	}
	return merged
}
