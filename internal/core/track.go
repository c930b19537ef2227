package core

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// TrackID is a stable integer identifier for a track, derived from its
// artist and title.
type TrackID int64

// Track represents a music track. Two tracks with the same artist and
// title are the same track.
type Track struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

// ID returns the track's identifier: the first 4 bytes of the MD5 digest
// of the canonical "artist\x1ftitle" encoding, as an unsigned 32-bit value.
// The digest is stable across process runs. Collisions between distinct
// tracks are an accepted data-integrity risk and are not resolved; Library
// detects duplicates by value, not by ID, so a collision surfaces as a
// DuplicateTrackError rather than a silent overwrite.
func (t Track) ID() TrackID {
	sum := md5.Sum([]byte(t.Artist + "\x1f" + t.Title))
	return TrackID(binary.BigEndian.Uint32(sum[:4]))
}

func (t Track) String() string {
	return fmt.Sprintf("%s - %s", t.Artist, t.Title)
}
