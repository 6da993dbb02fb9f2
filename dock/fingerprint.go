// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/fingerprint.go
// Summary: Structural hash of the docking tree.

package dock

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the tree shape: ids, child order, sizes, tab titles and
// floating panels. Two worlds with equal fingerprints have the same layout
// structure; highlight styling and drag state are ignored.
func (w *World) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	writeUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	var walk func(id EntityID)
	walk = func(id EntityID) {
		n, ok := w.nodes[id]
		if !ok {
			return
		}
		writeUint(uint64(id))
		h.WriteString(n.Name)
		if n.SizedZone != nil {
			writeUint(math.Float64bits(n.SizedZone.size))
			writeUint(math.Float64bits(n.SizedZone.minSize))
			writeUint(uint64(n.SizedZone.direction))
		}
		if n.Tab != nil {
			h.WriteString(n.Tab.Title)
		}
		if n.FloatingPanel != nil {
			h.WriteString(n.FloatingPanel.Title)
		}
		if n.RemoveEmpty != nil {
			writeUint(uint64(n.RemoveEmpty.zone))
		}
		writeUint(uint64(len(n.Children)))
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(w.root)
	walk(w.floating)
	return h.Sum64()
}
