// Package solver encodes a boardgraph.Graph's Numberlink rules as a CNF
// formula, hands it to package cdcl, and decodes the resulting model back
// into an affiliation for every node and edge.
//
// # Logical setup
//
// Every vertex V must have exactly one nonzero affiliation. If V is a
// Terminus, that affiliation is already known: it is asserted as an
// assumption rather than left for the solver to find, exactly one incident
// edge carries the same affiliation (the edge the path exits through), and
// every other incident edge carries none. If V is not a Terminus, its
// affiliation A is unknown but still forced nonzero, and exactly two
// incident edges must carry A: the path runs through V between them,
// enforced by the same logical structure the source material uses (V
// having A implies some incident edge has A; any incident edge having A
// implies another does too; no three incident edges share A).
//
// Every edge has exactly one affiliation, possibly none, and a nonzero
// edge affiliation holds exactly when both endpoints share that
// affiliation — encoded as both directions of that biconditional, so two
// adjacent cells of the same color are always joined by an edge of it.
package solver

import (
	"fmt"

	"github.com/katalvlaran/numberlink/affiliation"
	"github.com/katalvlaran/numberlink/boardgraph"
	"github.com/katalvlaran/numberlink/cdcl"
	"github.com/katalvlaran/numberlink/logic"
)

// Failure is the reason solving a GraphSolver failed.
type Failure int

const (
	// Inconsistent means the CDCL engine reported UNSAT: the puzzle, as
	// stated, has no valid coloring.
	Inconsistent Failure = iota
	// NoAffFound means the engine reported SAT but no subject's model
	// variables contained the expected single positive literal. This
	// indicates a defect in the encoding, not a malformed puzzle.
	NoAffFound
)

// Error implements the error interface so a Failure can be returned and
// compared directly with errors.Is.
func (f Failure) Error() string {
	switch f {
	case Inconsistent:
		return "solver: graph has no valid affiliation assignment"
	case NoAffFound:
		return "solver: model decoding found no affiliation for a subject"
	default:
		return "solver: unknown failure"
	}
}

type subjectKind bool

const (
	nodeSubject subjectKind = false
	edgeSubject subjectKind = true
)

type subject struct {
	kind subjectKind
	id   string
}

// Solution is the decoded output of a successful Solve: every node and
// edge ID mapped to its affiliation (Null for an edge outside any path).
type Solution struct {
	NodeAffiliations map[string]affiliation.ID
	EdgeAffiliations map[string]affiliation.ID
}

// GraphSolver encodes and solves the Numberlink rules for one graph.
// Construct a fresh GraphSolver per solve attempt; it is not meant to be
// reused across graph mutations.
type GraphSolver[D comparable] struct {
	g        *boardgraph.Graph[D]
	subjects []subject
	index    map[subject]int
	maxAff   affiliation.ID
}

// New builds a GraphSolver over g, inferring the highest affiliation in
// play from g's Terminus cells.
// Complexity: O(V+E) to build the dense subject index this package's
// design notes call for, replacing the linear scan its source material
// used per variable lookup.
func New[D comparable](g *boardgraph.Graph[D]) *GraphSolver[D] {
	nodes := g.Nodes()
	edges := g.AllEdges()

	var maxAff affiliation.ID
	for _, n := range nodes {
		if aff, ok := n.Cell.IsTerminus(); ok && aff > maxAff {
			maxAff = aff
		}
	}

	subjects := make([]subject, 0, len(nodes)+len(edges))
	index := make(map[subject]int, len(nodes)+len(edges))
	for _, n := range nodes {
		s := subject{kind: nodeSubject, id: n.ID}
		index[s] = len(subjects)
		subjects = append(subjects, s)
	}
	for _, e := range edges {
		s := subject{kind: edgeSubject, id: e.ID}
		index[s] = len(subjects)
		subjects = append(subjects, s)
	}

	return &GraphSolver[D]{g: g, subjects: subjects, index: index, maxAff: maxAff}
}

func (gs *GraphSolver[D]) numAffiliations() int { return int(gs.maxAff) + 1 }

func (gs *GraphSolver[D]) numVars() int { return len(gs.subjects) * gs.numAffiliations() }

func (gs *GraphSolver[D]) affiliationVar(s subject, aff affiliation.ID) cdcl.Var {
	idx, ok := gs.index[s]
	if !ok {
		panic(fmt.Sprintf("solver: unknown subject %+v", s))
	}
	return cdcl.Var(idx*gs.numAffiliations() + int(aff))
}

func edgeSubjectOf[D comparable](e *boardgraph.Edge[D]) subject {
	return subject{kind: edgeSubject, id: e.ID}
}

// Solve runs the encoding through package cdcl and decodes its model.
// Complexity: clause generation is O(V*deg(V)^3 + E) in the worst case,
// dominated by the "no three incident edges share an affiliation" clauses;
// see this package's doc comment and its design notes on why that stays
// tractable for bounded-degree shapes. Solving itself is the cdcl
// package's cost, exponential in the worst case for a DPLL search.
func (gs *GraphSolver[D]) Solve() (*Solution, error) {
	s := cdcl.New(gs.numVars())

	for _, n := range gs.g.Nodes() {
		subj := subject{kind: nodeSubject, id: n.ID}
		incident := gs.g.Edges(n.ID)

		if aff, isTerm := n.Cell.IsTerminus(); isTerm {
			gs.encodeTerminus(s, subj, incident, aff)
			continue
		}
		gs.encodeUnknownVertex(s, subj, incident)
	}

	for _, e := range gs.g.AllEdges() {
		gs.encodeEdge(s, e)
	}

	res := s.Solve()
	if !res.Sat {
		return nil, Inconsistent
	}
	return gs.decode(res.Model)
}

// encodeTerminus asserts subj's known affiliation as an assumption, and
// constrains its incident edges to exactly one carrying aff and exactly
// one carrying a nonzero affiliation at all (necessarily the same edge).
func (gs *GraphSolver[D]) encodeTerminus(s *cdcl.Solver, subj subject, incident []*boardgraph.Edge[D], aff affiliation.ID) {
	for cand := affiliation.ID(0); cand <= gs.maxAff; cand++ {
		s.Assume(cdcl.Of(gs.affiliationVar(subj, cand), cand == aff))
	}

	sameAff := make([]cdcl.Lit, len(incident))
	nonNull := make([]cdcl.Lit, len(incident))
	for i, e := range incident {
		es := edgeSubjectOf(e)
		sameAff[i] = cdcl.PosLit(gs.affiliationVar(es, aff))
		nonNull[i] = cdcl.NegLit(gs.affiliationVar(es, affiliation.Null))
	}
	for _, cl := range logic.ExactlyOne(sameAff) {
		s.AddClause(cl)
	}
	for _, cl := range logic.ExactlyOne(nonNull) {
		s.AddClause(cl)
	}
}

// encodeUnknownVertex forces subj to carry exactly one nonzero
// affiliation, and for every candidate affiliation enforces that subj
// having it implies exactly two of its incident edges do too.
func (gs *GraphSolver[D]) encodeUnknownVertex(s *cdcl.Solver, subj subject, incident []*boardgraph.Edge[D]) {
	s.Assume(cdcl.NegLit(gs.affiliationVar(subj, affiliation.Null)))

	nonNull := make([]cdcl.Lit, 0, gs.maxAff)
	for aff := affiliation.ID(1); aff <= gs.maxAff; aff++ {
		nonNull = append(nonNull, cdcl.PosLit(gs.affiliationVar(subj, aff)))
	}
	for _, cl := range logic.ExactlyOne(nonNull) {
		s.AddClause(cl)
	}

	for aff := affiliation.ID(1); aff <= gs.maxAff; aff++ {
		// subj having aff implies at least one incident edge has aff.
		implies := make([]cdcl.Lit, 0, 1+len(incident))
		implies = append(implies, cdcl.NegLit(gs.affiliationVar(subj, aff)))
		for _, e := range incident {
			implies = append(implies, cdcl.PosLit(gs.affiliationVar(edgeSubjectOf(e), aff)))
		}
		s.AddClause(implies)

		// any one incident edge having aff implies another does too.
		for _, e1 := range incident {
			clause := make([]cdcl.Lit, len(incident))
			for i, e := range incident {
				clause[i] = cdcl.Of(gs.affiliationVar(edgeSubjectOf(e), aff), e.ID != e1.ID)
			}
			s.AddClause(clause)
		}

		// no three incident edges share aff.
		for _, triple := range combinations3(incident) {
			s.AddClause([]cdcl.Lit{
				cdcl.NegLit(gs.affiliationVar(edgeSubjectOf(triple[0]), aff)),
				cdcl.NegLit(gs.affiliationVar(edgeSubjectOf(triple[1]), aff)),
				cdcl.NegLit(gs.affiliationVar(edgeSubjectOf(triple[2]), aff)),
			})
		}
	}
}

// encodeEdge forces e to carry exactly one affiliation (possibly Null),
// and for every nonzero candidate encodes that e carries it exactly when
// both endpoints do.
func (gs *GraphSolver[D]) encodeEdge(s *cdcl.Solver, e *boardgraph.Edge[D]) {
	es := edgeSubjectOf(e)

	all := make([]cdcl.Lit, 0, gs.numAffiliations())
	for aff := affiliation.ID(0); aff <= gs.maxAff; aff++ {
		all = append(all, cdcl.PosLit(gs.affiliationVar(es, aff)))
	}
	for _, cl := range logic.ExactlyOne(all) {
		s.AddClause(cl)
	}

	fromSubj := subject{kind: nodeSubject, id: e.From}
	toSubj := subject{kind: nodeSubject, id: e.To}
	for aff := affiliation.ID(1); aff <= gs.maxAff; aff++ {
		a := gs.affiliationVar(es, aff)
		b := gs.affiliationVar(fromSubj, aff)
		c := gs.affiliationVar(toSubj, aff)
		s.AddClause([]cdcl.Lit{cdcl.NegLit(a), cdcl.PosLit(b)})
		s.AddClause([]cdcl.Lit{cdcl.NegLit(a), cdcl.PosLit(c)})
		s.AddClause([]cdcl.Lit{cdcl.PosLit(a), cdcl.NegLit(b), cdcl.NegLit(c)})
	}
}

func (gs *GraphSolver[D]) decode(model []bool) (*Solution, error) {
	sol := &Solution{
		NodeAffiliations: make(map[string]affiliation.ID),
		EdgeAffiliations: make(map[string]affiliation.ID),
	}

	for _, n := range gs.g.Nodes() {
		subj := subject{kind: nodeSubject, id: n.ID}
		aff, ok := gs.firstMatching(model, subj, affiliation.ID(1), gs.maxAff)
		if !ok {
			return nil, NoAffFound
		}
		sol.NodeAffiliations[n.ID] = aff
	}

	for _, e := range gs.g.AllEdges() {
		subj := edgeSubjectOf(e)
		aff, ok := gs.firstMatching(model, subj, affiliation.ID(0), gs.maxAff)
		if !ok {
			return nil, NoAffFound
		}
		sol.EdgeAffiliations[e.ID] = aff
	}

	return sol, nil
}

func (gs *GraphSolver[D]) firstMatching(model []bool, subj subject, lo, hi affiliation.ID) (affiliation.ID, bool) {
	for aff := lo; aff <= hi; aff++ {
		if model[gs.affiliationVar(subj, aff)] {
			return aff, true
		}
	}
	return affiliation.Null, false
}

func combinations3[D comparable](edges []*boardgraph.Edge[D]) [][3]*boardgraph.Edge[D] {
	n := len(edges)
	if n < 3 {
		return nil
	}
	out := make([][3]*boardgraph.Edge[D], 0, n*(n-1)*(n-2)/6)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				out = append(out, [3]*boardgraph.Edge[D]{edges[i], edges[j], edges[k]})
			}
		}
	}
	return out
}
