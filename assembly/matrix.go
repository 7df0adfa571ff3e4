// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly builds the dense, non-symmetric global influence-
// coefficient matrix from a list of boundary elements (C5), applying the
// per-row boundary-condition transform of spec.md §4.3 and caching
// assembled matrices by a geometry hash.
package assembly

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/rockmech/bemcore/internal/workpool"
	"github.com/rockmech/bemcore/kernel"
	"github.com/rockmech/bemcore/material"
	"github.com/rockmech/bemcore/mesh"
)

// Matrix is the dense global influence-coefficient matrix A, order 2*N*p.
type Matrix struct {
	A    [][]float64
	B    []float64 // right-hand side assembled from element BC magnitudes
	Dofs []Dof     // Dofs[k] identifies the k-th row/column's (element, node, normal|shear)
}

// Dof identifies a single row/column of the system: element index, local
// collocation-node index within that element, and whether it is the
// "normal" or "shear" unknown/equation at that node.
type Dof struct {
	ElementIndex int
	NodeIndex    int
	IsShear      bool
}

// Order returns the matrix's square order, 2*N*p.
func (m *Matrix) Order() int { return len(m.A) }

// Stats reports assembly diagnostics per spec.md §4.3.
type Stats struct {
	Order            int
	AssemblyTimeSec  float64
	HashTimeSec      float64
	CacheHit         bool
	FrobeniusNorm    float64 // not computed by Build or BuildCached; always 0
}

// Build assembles the global matrix for the given elements, ground-surface
// Y coordinate and half-space flag. Row assembly is partitioned across a
// fixed worker pool with each worker writing disjoint rows, so there is no
// locking on the matrix (spec.md §4.3, §9).
func Build(elements []mesh.Element, mat material.Derived, groundY float64, halfSpace bool) (*Matrix, error) {
	for i, e := range elements {
		e.Validate()
		if !e.BC.Valid() {
			return nil, chk.Err("element %d: invalid boundary-condition type %d", i, e.BC)
		}
	}

	dofs := buildDofList(elements)
	n := len(dofs)
	if n == 0 {
		return nil, chk.Err("cannot assemble a matrix with zero elements")
	}

	A := la.MatAlloc(n, n)
	b := make([]float64, n)
	for k, d := range dofs {
		e := elements[d.ElementIndex]
		if d.IsShear {
			b[k] = e.BCShear
		} else {
			b[k] = e.BCNormal
		}
	}

	workpool.Run(n, func(row int) {
		assembleRow(A[row], row, dofs, elements, mat, groundY, halfSpace)
	})

	return &Matrix{A: A, B: b, Dofs: dofs}, nil
}

// buildDofList enumerates the (element, node, normal|shear) degrees of
// freedom in a fixed, deterministic order: element, then collocation node
// within the element, then normal before shear.
func buildDofList(elements []mesh.Element) []Dof {
	var dofs []Dof
	for ei, e := range elements {
		p := e.Order.NumCollocationNodes()
		for ni := 0; ni < p; ni++ {
			dofs = append(dofs, Dof{ElementIndex: ei, NodeIndex: ni, IsShear: false})
			dofs = append(dofs, Dof{ElementIndex: ei, NodeIndex: ni, IsShear: true})
		}
	}
	return dofs
}

// collocationPoint returns the local x'-coordinate (signed distance from
// the element midpoint along the chord) of collocation node nodeIndex on e.
func collocationPoint(e mesh.Element, nodeIndex int) (xLocal float64) {
	nodes := e.Order.CollocationNodes(e.HalfLength())
	return nodes[nodeIndex]
}

func assembleRow(row []float64, rowIdx int, dofs []Dof, elements []mesh.Element, mat material.Derived, groundY float64, halfSpace bool) {
	rowDof := dofs[rowIdx]
	rowElem := elements[rowDof.ElementIndex]
	cosB, sinB := rowElem.DirectionCosines()
	nx, ny := -sinB, cosB
	tx, ty := cosB, sinB

	xLocal := collocationPoint(rowElem, rowDof.NodeIndex)
	m := rowElem.Midpoint()
	obs := geomPointFromLocal(m, cosB, sinB, xLocal)

	for colIdx, colDof := range dofs {
		srcElem := elements[colDof.ElementIndex]
		p := srcElem.Order.NumCollocationNodes()
		weight := 1.0 / float64(p) // shape-function weight distributing the element's closed-form integral across its nodes
		c := kernel.Integrate(obs, srcElem, mat, groundY, halfSpace)

		var valN, valS float64 // contribution of this source node's normal/shear unknown to this row
		switch rowElem.BC {
		case mesh.BCTraction:
			valN = resolveTraction(c.SigXXn, c.SigYYn, c.SigXYn, nx, ny, rowDof.IsShear, tx, ty)
			valS = resolveTraction(c.SigXXs, c.SigYYs, c.SigXYs, nx, ny, rowDof.IsShear, tx, ty)
		case mesh.BCDisplacement:
			valN = resolveDisplacement(c.Uxn, c.Uyn, nx, ny, rowDof.IsShear, tx, ty)
			valS = resolveDisplacement(c.Uxs, c.Uys, nx, ny, rowDof.IsShear, tx, ty)
		case mesh.BCNormalDispShearStress:
			if !rowDof.IsShear {
				valN = resolveDisplacement(c.Uxn, c.Uyn, nx, ny, false, tx, ty)
				valS = resolveDisplacement(c.Uxs, c.Uys, nx, ny, false, tx, ty)
			} else {
				valN = resolveTraction(c.SigXXn, c.SigYYn, c.SigXYn, nx, ny, true, tx, ty)
				valS = resolveTraction(c.SigXXs, c.SigYYs, c.SigXYs, nx, ny, true, tx, ty)
			}
		case mesh.BCNormalStressShearDisp:
			if !rowDof.IsShear {
				valN = resolveTraction(c.SigXXn, c.SigYYn, c.SigXYn, nx, ny, false, tx, ty)
				valS = resolveTraction(c.SigXXs, c.SigYYs, c.SigXYs, nx, ny, false, tx, ty)
			} else {
				valN = resolveDisplacement(c.Uxn, c.Uyn, nx, ny, true, tx, ty)
				valS = resolveDisplacement(c.Uxs, c.Uys, nx, ny, true, tx, ty)
			}
		default:
			chk.Panic("assembly: unknown boundary-condition type %d on element %d", rowElem.BC, rowDof.ElementIndex)
		}

		if !colDof.IsShear {
			row[colIdx] = valN * weight
		} else {
			row[colIdx] = valS * weight
		}
	}
}

// resolveTraction projects the stress tensor (sxx,syy,sxy) onto element
// i's normal (nx,ny) to get the traction vector, then resolves that vector
// onto either the normal or the tangential (tx,ty) direction.
func resolveTraction(sxx, syy, sxy, nx, ny float64, shear bool, tx, ty float64) float64 {
	tractionX := sxx*nx + sxy*ny
	tractionY := sxy*nx + syy*ny
	if shear {
		return tractionX*tx + tractionY*ty
	}
	return tractionX*nx + tractionY*ny
}

// resolveDisplacement resolves the displacement vector (ux,uy) onto either
// the normal or the tangential direction of element i.
func resolveDisplacement(ux, uy, nx, ny float64, shear bool, tx, ty float64) float64 {
	if shear {
		return ux*tx + uy*ty
	}
	return ux*nx + uy*ny
}
