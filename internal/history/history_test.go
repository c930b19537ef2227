package history

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"mixmem/internal/core"
	mmerrors "mixmem/internal/errors"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func writePlaylist(t *testing.T, dir, name string, entries ...string) string {
	t.Helper()
	lines := "#EXTM3U\n"
	for _, e := range entries {
		lines += "#EXTINF:240," + e + "\n"
		lines += "/music/" + e + ".mp3\n"
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", name, err)
	}
	return path
}

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantDate string
		wantSeq  int
		wantErr  bool
	}{
		{"plain", "HISTORY 2023-07-28.m3u8", "2023-07-28", 1, false},
		{"with sequence", "HISTORY 2023-07-28 (4).m3u8", "2023-07-28", 4, false},
		{"no date", "HISTORY.m3u8", "", 0, true},
		{"wrong prefix", "PLAYLIST 2023-07-28.m3u8", "", 0, true},
		{"wrong extension", "HISTORY 2023-07-28.m3u", "", 0, true},
		{"trailing junk", "HISTORY 2023-07-28 (4) copy.m3u8", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := ParseFilename(filepath.Join("histories", tt.filename))
			if tt.wantErr {
				if !errors.Is(err, mmerrors.ErrMalformedHistory) {
					t.Errorf("ParseFilename() error = %v, want ErrMalformedHistory", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFilename() error = %v", err)
			}
			if !file.Date.Equal(date(t, tt.wantDate)) {
				t.Errorf("Date = %v, want %s", file.Date, tt.wantDate)
			}
			if file.Seq != tt.wantSeq {
				t.Errorf("Seq = %d, want %d", file.Seq, tt.wantSeq)
			}
		})
	}
}

func TestParseM3U(t *testing.T) {
	dir := t.TempDir()
	path := writePlaylist(t, dir, "HISTORY 2023-07-28.m3u8",
		"Bicep - Glue",
		"Overmono - So U Kno",
		"Four Tet - Baby",
	)

	tracks, err := ParseM3U(path)
	if err != nil {
		t.Fatalf("ParseM3U() error = %v", err)
	}

	want := []core.Track{
		{Artist: "Bicep", Title: "Glue"},
		{Artist: "Overmono", Title: "So U Kno"},
		{Artist: "Four Tet", Title: "Baby"},
	}
	if !reflect.DeepEqual(tracks, want) {
		t.Errorf("ParseM3U() = %v, want %v", tracks, want)
	}
}

func TestParseM3UTitleWithSeparator(t *testing.T) {
	dir := t.TempDir()
	path := writePlaylist(t, dir, "HISTORY 2023-07-28.m3u8",
		"Underworld - Born Slippy - Nuxx")

	tracks, err := ParseM3U(path)
	if err != nil {
		t.Fatalf("ParseM3U() error = %v", err)
	}

	// Only the first separator splits; the rest belongs to the title.
	want := []core.Track{{Artist: "Underworld", Title: "Born Slippy - Nuxx"}}
	if !reflect.DeepEqual(tracks, want) {
		t.Errorf("ParseM3U() = %v, want %v", tracks, want)
	}
}

func TestTransitions(t *testing.T) {
	t1 := core.Track{Artist: "A", Title: "X"}
	t2 := core.Track{Artist: "B", Title: "Y"}
	t3 := core.Track{Artist: "C", Title: "Z"}

	tests := []struct {
		name   string
		tracks []core.Track
		want   []Transition
	}{
		{"empty", nil, nil},
		{"single track", []core.Track{t1}, nil},
		{
			"adjacent pairs only",
			[]core.Track{t1, t2, t3},
			[]Transition{{From: t1, To: t2}, {From: t2, To: t3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Playlist{Tracks: tt.tracks}
			if got := p.Transitions(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Transitions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaylistLibrary(t *testing.T) {
	p := Playlist{Tracks: []core.Track{
		{Artist: "A", Title: "X"},
		{Artist: "B", Title: "Y"},
		{Artist: "A", Title: "X"}, // played twice in one set
	}}

	lib, err := p.Library()
	if err != nil {
		t.Fatalf("Library() error = %v", err)
	}
	if lib.Len() != 2 {
		t.Errorf("Len() = %d, want 2", lib.Len())
	}
}

func TestLoadSince(t *testing.T) {
	dir := t.TempDir()
	writePlaylist(t, dir, "HISTORY 2023-07-28 (2).m3u8", "C - Z")
	writePlaylist(t, dir, "HISTORY 2023-07-28.m3u8", "B - Y")
	writePlaylist(t, dir, "HISTORY 2023-06-01.m3u8", "A - X")

	t.Run("sorted by date then sequence", func(t *testing.T) {
		playlists, err := LoadSince(dir, time.Time{})
		if err != nil {
			t.Fatalf("LoadSince() error = %v", err)
		}
		var names []string
		for _, p := range playlists {
			names = append(names, p.Name)
		}
		want := []string{
			"HISTORY 2023-06-01.m3u8",
			"HISTORY 2023-07-28.m3u8",
			"HISTORY 2023-07-28 (2).m3u8",
		}
		if !reflect.DeepEqual(names, want) {
			t.Errorf("LoadSince() order = %v, want %v", names, want)
		}
	})

	t.Run("min date filter", func(t *testing.T) {
		playlists, err := LoadSince(dir, date(t, "2023-07-01"))
		if err != nil {
			t.Fatalf("LoadSince() error = %v", err)
		}
		if len(playlists) != 2 {
			t.Errorf("LoadSince() len = %d, want 2", len(playlists))
		}
	})

	t.Run("no files after filter", func(t *testing.T) {
		_, err := LoadSince(dir, date(t, "2024-01-01"))
		if !errors.Is(err, mmerrors.ErrMalformedHistory) {
			t.Errorf("LoadSince() error = %v, want ErrMalformedHistory", err)
		}
	})

	t.Run("malformed filename aborts", func(t *testing.T) {
		bad := t.TempDir()
		writePlaylist(t, bad, "HISTORY 2023-07-28.m3u8", "A - X")
		if err := os.WriteFile(filepath.Join(bad, "notes.m3u8"), []byte("#EXTM3U\n"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if _, err := LoadSince(bad, time.Time{}); !errors.Is(err, mmerrors.ErrMalformedHistory) {
			t.Errorf("LoadSince() error = %v, want ErrMalformedHistory", err)
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writePlaylist(t, dir, "HISTORY 2023-07-28 (3).m3u8", "A - X", "B - Y")

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name != "HISTORY 2023-07-28 (3).m3u8" || p.Seq != 3 {
		t.Errorf("Load() = %+v, want name and seq from filename", p)
	}
	if len(p.Tracks) != 2 {
		t.Errorf("Tracks len = %d, want 2", len(p.Tracks))
	}
}
