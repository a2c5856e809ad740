// Package board is the top-level façade tying a built boardgraph.Graph to
// the solver and shape packages: Solve produces a colored graph, Render
// turns either a pre- or post-solve graph into the textual grid format.
package board

import (
	"strings"

	"github.com/katalvlaran/numberlink/affiliation"
	"github.com/katalvlaran/numberlink/boardgraph"
	"github.com/katalvlaran/numberlink/cell"
	"github.com/katalvlaran/numberlink/location"
	"github.com/katalvlaran/numberlink/shape"
	"github.com/katalvlaran/numberlink/solver"
)

// Board wraps a built graph together with the dimensions, affiliation
// display table, and shape needed to solve and render it.
type Board[D comparable] struct {
	Graph        *boardgraph.Graph[D]
	Dims         location.Dimension
	Affiliations *affiliation.Table
	Shape        shape.Shape[D]
}

// New wraps an already-built graph. Callers typically obtain the pieces
// from a builder's Built result.
func New[D comparable](g *boardgraph.Graph[D], dims location.Dimension, affs *affiliation.Table, sh shape.Shape[D]) *Board[D] {
	return &Board[D]{Graph: g, Dims: dims, Affiliations: affs, Shape: sh}
}

// Solve runs the SAT encoding over the board's graph and, on success,
// returns a new Board whose graph carries the decoded affiliations:
// every Empty node becomes a Path cell, Terminus and Bridge nodes and the
// graph's topology are otherwise unchanged.
func (b *Board[D]) Solve() (*Board[D], error) {
	gs := solver.New(b.Graph)
	sol, err := gs.Solve()
	if err != nil {
		return nil, err
	}

	colored := boardgraph.New[D]()
	idByOld := make(map[string]string, b.Graph.NodeCount())

	for _, n := range b.Graph.Nodes() {
		c := n.Cell
		switch c.Kind {
		case cell.Empty:
			c = cell.NewPath[D](sol.NodeAffiliations[n.ID])
		case cell.Bridge:
			c.Affiliation = sol.NodeAffiliations[n.ID]
		}
		newID, addErr := colored.AddNode(n.Location, c)
		if addErr != nil {
			return nil, addErr
		}
		idByOld[n.ID] = newID
	}

	for _, e := range b.Graph.AllEdges() {
		aff := sol.EdgeAffiliations[e.ID]
		if _, addErr := colored.AddEdge(idByOld[e.From], idByOld[e.To], e.Direction, aff); addErr != nil {
			return nil, addErr
		}
	}

	return &Board[D]{Graph: colored, Dims: b.Dims, Affiliations: b.Affiliations, Shape: b.Shape}, nil
}

// Render flattens the board through its shape's GraphToArray and prints
// the result using the character policy: terminus cells render uppercase,
// path cells lowercase, bridge cells '+', empty or dropped Locations '.'.
func (b *Board[D]) Render() (string, error) {
	grid, err := b.Shape.GraphToArray(b.Dims, b.Graph)
	if err != nil {
		return "", err
	}

	chars := make([][]rune, len(grid))
	for y, row := range grid {
		chars[y] = make([]rune, len(row))
		for x, fc := range row {
			chars[y][x] = glyphFor(b.Affiliations, fc)
		}
	}

	return b.Shape.Print(chars), nil
}

func glyphFor[D comparable](affs *affiliation.Table, fc shape.FrozenCell[D]) rune {
	switch fc.Kind {
	case cell.Terminus:
		return upper(affs.Char(fc.Affiliation))
	case cell.Path:
		return lower(affs.Char(fc.Affiliation))
	case cell.Bridge:
		return '+'
	default:
		return '.'
	}
}

func upper(r rune) rune {
	return []rune(strings.ToUpper(string(r)))[0]
}

func lower(r rune) rune {
	return []rune(strings.ToLower(string(r)))[0]
}
