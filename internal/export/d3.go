// Package export converts a track network into the node/link JSON
// document consumed by the d3.js visualization.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"mixmem/internal/core"
	"mixmem/internal/errors"
)

// Node is one track in the exported document.
type Node struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Link is one directed connection in the exported document.
type Link struct {
	Source int64 `json:"source"`
	Target int64 `json:"target"`
}

// Document is the d3-friendly network shape:
//
//	{ "nodes": [ { "id": 1, "name": "A" } ],
//	  "links": [ { "source": 1, "target": 2 } ] }
type Document struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// FromNetwork builds a document from a network: one node per track with
// its "artist - title" display name, one link per directed connection.
func FromNetwork(network *core.Network) (*Document, error) {
	library := network.Library()

	doc := &Document{
		Nodes: make([]Node, 0, network.TrackCount()),
		Links: make([]Link, 0, network.ConnectionCount()),
	}
	for _, id := range library.IDs() {
		track, err := library.Get(id)
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, Node{ID: int64(id), Name: track.String()})
	}
	for _, c := range network.Connections() {
		doc.Links = append(doc.Links, Link{Source: int64(c.Source), Target: int64(c.Target)})
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate checks the document shape: node IDs must be unique and every
// link endpoint must reference a listed node. The network invariants
// should make violations impossible; this guards regressions before
// anything is written out.
func (d *Document) Validate() error {
	ids := make(map[int64]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		if ids[n.ID] {
			return fmt.Errorf("%w: duplicate node id %d", errors.ErrInvalidDocument, n.ID)
		}
		ids[n.ID] = true
	}
	for _, l := range d.Links {
		if !ids[l.Source] {
			return fmt.Errorf("%w: link source %d is not a node", errors.ErrInvalidDocument, l.Source)
		}
		if !ids[l.Target] {
			return fmt.Errorf("%w: link target %d is not a node", errors.ErrInvalidDocument, l.Target)
		}
	}
	return nil
}

// WriteFile validates the document and writes it as indented JSON.
func (d *Document) WriteFile(path string) error {
	if err := d.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode network document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
