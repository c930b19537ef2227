package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mixmem/internal/core"
	mmerrors "mixmem/internal/errors"
)

func testNetwork(t *testing.T) *core.Network {
	t.Helper()
	library, err := core.FromTracks([]core.Track{
		{Artist: "A", Title: "X"},
		{Artist: "B", Title: "Y"},
	})
	if err != nil {
		t.Fatalf("FromTracks() error = %v", err)
	}
	network := core.NewNetwork(library)
	a, _ := library.IDFor("A", "X")
	b, _ := library.IDFor("B", "Y")
	if err := network.AddConnection(a, b, false); err != nil {
		t.Fatalf("AddConnection() error = %v", err)
	}
	return network
}

func TestFromNetwork(t *testing.T) {
	network := testNetwork(t)

	doc, err := FromNetwork(network)
	if err != nil {
		t.Fatalf("FromNetwork() error = %v", err)
	}

	if len(doc.Nodes) != network.TrackCount() {
		t.Errorf("nodes = %d, want %d", len(doc.Nodes), network.TrackCount())
	}
	if len(doc.Links) != network.ConnectionCount() {
		t.Errorf("links = %d, want %d", len(doc.Links), network.ConnectionCount())
	}

	// Every network track appears exactly once with its display name.
	names := map[int64]string{}
	for _, n := range doc.Nodes {
		if _, dup := names[n.ID]; dup {
			t.Errorf("node id %d appears twice", n.ID)
		}
		names[n.ID] = n.Name
	}
	for _, id := range network.Library().IDs() {
		track, _ := network.Library().Get(id)
		if names[int64(id)] != track.String() {
			t.Errorf("node %d name = %q, want %q", id, names[int64(id)], track.String())
		}
	}

	// Every connection appears exactly once as a link.
	for i, c := range network.Connections() {
		link := doc.Links[i]
		if link.Source != int64(c.Source) || link.Target != int64(c.Target) {
			t.Errorf("link %d = %+v, want %d -> %d", i, link, c.Source, c.Target)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr bool
	}{
		{
			name: "valid",
			doc: Document{
				Nodes: []Node{{ID: 1, Name: "A - X"}, {ID: 2, Name: "B - Y"}},
				Links: []Link{{Source: 1, Target: 2}},
			},
		},
		{
			name: "empty",
			doc:  Document{},
		},
		{
			name: "duplicate node id",
			doc: Document{
				Nodes: []Node{{ID: 1, Name: "A - X"}, {ID: 1, Name: "B - Y"}},
			},
			wantErr: true,
		},
		{
			name: "dangling link source",
			doc: Document{
				Nodes: []Node{{ID: 1, Name: "A - X"}},
				Links: []Link{{Source: 2, Target: 1}},
			},
			wantErr: true,
		},
		{
			name: "dangling link target",
			doc: Document{
				Nodes: []Node{{ID: 1, Name: "A - X"}},
				Links: []Link{{Source: 1, Target: 2}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.wantErr && !errors.Is(err, mmerrors.ErrInvalidDocument) {
				t.Errorf("Validate() error = %v, want ErrInvalidDocument", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	doc, err := FromNetwork(testNetwork(t))
	if err != nil {
		t.Fatalf("FromNetwork() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "track_network.json")
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(decoded.Nodes) != len(doc.Nodes) || len(decoded.Links) != len(doc.Links) {
		t.Errorf("decoded document = %d nodes, %d links; want %d, %d",
			len(decoded.Nodes), len(decoded.Links), len(doc.Nodes), len(doc.Links))
	}
}

func TestWriteFileRejectsInvalid(t *testing.T) {
	doc := &Document{Links: []Link{{Source: 1, Target: 2}}}
	path := filepath.Join(t.TempDir(), "bad.json")

	if err := doc.WriteFile(path); !errors.Is(err, mmerrors.ErrInvalidDocument) {
		t.Fatalf("WriteFile() error = %v, want ErrInvalidDocument", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("invalid document was written to disk")
	}
}
