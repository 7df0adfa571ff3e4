// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"hash/maphash"
	"math"

	"github.com/rockmech/bemcore/geom"
	"github.com/rockmech/bemcore/mesh"
)

var elementSeed = maphash.MakeSeed()

// elementKey hashes the discretiser's inputs: every boundary's vertices
// and ground-surface flag, plus the discretisation settings, so repeated
// Solve calls against an unchanged problem skip re-discretisation, per
// spec.md §4.7.
func elementKey(boundaries []geom.Boundary, cfg mesh.DiscretiserConfig) uint64 {
	var h maphash.Hash
	h.SetSeed(elementSeed)
	writeFloat := func(v float64) {
		var buf [8]byte
		bits := math.Float64bits(v)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		h.Write(buf[:])
	}
	for _, b := range boundaries {
		for _, v := range b.Vertices {
			writeFloat(v.X)
			writeFloat(v.Y)
		}
		writeFloat(boolFloat(b.IsGroundSurface))
	}
	writeFloat(float64(cfg.TargetElementCount))
	writeFloat(float64(cfg.ElementOrder))
	writeFloat(boolFloat(cfg.UseAdaptiveSizing))
	writeFloat(cfg.MaxRefinementFactor)
	return h.Sum64()
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// elementCache stores discretised element lists by elementKey.
type elementCache struct {
	entries map[uint64]elementCacheEntry
}

type elementCacheEntry struct {
	elements []mesh.Element
	stats    mesh.Stats
}

func newElementCache() *elementCache {
	return &elementCache{entries: make(map[uint64]elementCacheEntry)}
}

func (c *elementCache) get(boundaries []geom.Boundary, cfg mesh.DiscretiserConfig, enable bool) ([]mesh.Element, mesh.Stats, error) {
	key := elementKey(boundaries, cfg)
	if enable {
		if e, ok := c.entries[key]; ok {
			return e.elements, e.stats, nil
		}
	}
	elements, stats, err := mesh.Discretize(boundaries, cfg)
	if err != nil {
		return nil, mesh.Stats{}, err
	}
	if enable {
		c.entries[key] = elementCacheEntry{elements: elements, stats: stats}
	}
	return elements, stats, nil
}

func (c *elementCache) invalidate() {
	c.entries = make(map[uint64]elementCacheEntry)
}
