// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import "github.com/rockmech/bemcore/geom"

// geomPointFromLocal returns the global point at signed distance xLocal
// from midpoint m along the direction (cosB, sinB).
func geomPointFromLocal(m geom.Point2D, cosB, sinB, xLocal float64) geom.Point2D {
	return geom.NewPoint2D(m.X+xLocal*cosB, m.Y+xLocal*sinB)
}
