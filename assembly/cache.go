// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"hash/maphash"
	"math"
	"time"

	"github.com/rockmech/bemcore/material"
	"github.com/rockmech/bemcore/mesh"
)

// geometrySeed is fixed for the process lifetime so that repeated hashing
// of the same canonical byte stream always produces the same digest
// within a run; it need not be stable across process restarts.
var geometrySeed = maphash.MakeSeed()

// Key is the 128-bit (two independent 64-bit hashes) geometry cache key of
// spec.md §4.3: a digest of every element's endpoints, order, BC type and
// BC magnitudes in order, plus ground-surface Y, half-space flag and the
// material's derived constants. Collisions are theoretically possible and,
// per spec.md §4.3, are accepted as negligible rather than guarded against.
type Key struct {
	Lo, Hi uint64
}

// ComputeKey hashes the assembly inputs into a cache Key.
func ComputeKey(elements []mesh.Element, groundY float64, halfSpace bool, mat material.Derived) Key {
	var h1, h2 maphash.Hash
	h1.SetSeed(geometrySeed)
	h2.SetSeed(geometrySeed)
	writeFloat := func(h *maphash.Hash, v float64) {
		var buf [8]byte
		bits := math.Float64bits(v)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		h.Write(buf[:])
	}
	for _, e := range elements {
		writeFloat(&h1, e.A.X)
		writeFloat(&h1, e.A.Y)
		writeFloat(&h1, e.B.X)
		writeFloat(&h1, e.B.Y)
		writeFloat(&h1, float64(e.Order))
		writeFloat(&h1, float64(e.BC))
		writeFloat(&h1, e.BCNormal)
		writeFloat(&h1, e.BCShear)

		writeFloat(&h2, e.A.X+1) // independent second stream, deliberately offset
		writeFloat(&h2, e.A.Y+1)
		writeFloat(&h2, e.B.X+1)
		writeFloat(&h2, e.B.Y+1)
		writeFloat(&h2, float64(e.BoundaryID))
		writeFloat(&h2, boolFloat(e.IsGroundSurface))
	}
	writeFloat(&h1, groundY)
	writeFloat(&h1, boolFloat(halfSpace))
	writeFloat(&h1, mat.E)
	writeFloat(&h1, mat.Nu)
	writeFloat(&h2, mat.G)
	writeFloat(&h2, mat.Kappa)
	return Key{Lo: h1.Sum64(), Hi: h2.Sum64()}
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Cache stores assembled matrices keyed by Key, single-writer single-
// reader within one owning orchestrator instance (spec.md §4.7, §5).
type Cache struct {
	entries map[Key]*Matrix
}

// NewCache returns an empty matrix cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*Matrix)}
}

// BuildCached assembles (or reuses) the influence matrix for the given
// inputs. On a cache hit it returns the same matrix handle and reports
// AssemblyTimeSec = 0, per spec.md §4.3.
func (c *Cache) BuildCached(elements []mesh.Element, mat material.Derived, groundY float64, halfSpace bool, enableCaching bool) (*Matrix, Stats, error) {
	hashStart := time.Now()
	key := ComputeKey(elements, groundY, halfSpace, mat)
	hashTime := time.Since(hashStart).Seconds()

	if enableCaching {
		if m, ok := c.entries[key]; ok {
			return m, Stats{Order: m.Order(), HashTimeSec: hashTime, CacheHit: true}, nil
		}
	}

	buildStart := time.Now()
	m, err := Build(elements, mat, groundY, halfSpace)
	if err != nil {
		return nil, Stats{}, err
	}
	assemblyTime := time.Since(buildStart).Seconds()

	if enableCaching {
		c.entries[key] = m
	}
	return m, Stats{Order: m.Order(), AssemblyTimeSec: assemblyTime, HashTimeSec: hashTime, CacheHit: false}, nil
}

// Invalidate clears every cached matrix.
func (c *Cache) Invalidate() {
	c.entries = make(map[Key]*Matrix)
}
