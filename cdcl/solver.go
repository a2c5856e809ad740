// Package cdcl implements a small conflict-driven Boolean satisfiability
// solver: unit propagation to a fixpoint after every decision, chronological
// backtracking on conflict, and a trivial first-unassigned decision
// heuristic. It has no outside dependencies by design — see DESIGN.md for
// why no third-party SAT engine was wired in instead.
//
// This is not a full modern CDCL engine (no learned clauses, no clause
// minimization, no restarts); it is sized for the puzzle instances the
// encoding in package solver produces, where unit propagation driven by the
// exactly-one cardinality clauses does almost all of the real work.
package cdcl

// Var is a zero-based Boolean variable index.
type Var int

// Lit is a signed literal over a Var: a positive Lit asserts its variable
// true, a negative Lit asserts it false. Var 0 has no representable zero
// literal, so variables are offset by one internally.
type Lit int

// PosLit returns the literal asserting v is true.
func PosLit(v Var) Lit { return Lit(v + 1) }

// NegLit returns the literal asserting v is false.
func NegLit(v Var) Lit { return -Lit(v + 1) }

// Of returns the positive or negative literal for v depending on positive.
func Of(v Var, positive bool) Lit {
	if positive {
		return PosLit(v)
	}
	return NegLit(v)
}

// Var returns the variable this literal refers to.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l - 1)
	}
	return Var(l - 1)
}

// Positive reports whether this literal asserts its variable true.
func (l Lit) Positive() bool { return l > 0 }

// Negate returns the complementary literal.
func (l Lit) Negate() Lit { return -l }

// Clause is a disjunction of literals.
type Clause []Lit

// Result is the outcome of a Solve call.
type Result struct {
	Sat bool
	// Model holds one entry per variable; valid only when Sat is true.
	Model []bool
}

// Solver accumulates clauses and assumptions over a fixed variable count
// and produces a single Result via Solve. It is not safe for concurrent use
// and is not meant to be reused after Solve returns.
type Solver struct {
	numVars  int
	clauses  []Clause
	assume   []Lit
	occursIn [][]int // var -> indices into clauses referencing it
}

// New returns a Solver over numVars variables (indices 0..numVars-1).
func New(numVars int) *Solver {
	return &Solver{numVars: numVars}
}

// AddClause appends one clause. An empty clause makes the instance
// trivially unsatisfiable.
func (s *Solver) AddClause(c Clause) {
	s.clauses = append(s.clauses, c)
}

// Assume records a literal that must hold in any model, without adding a
// unit clause for it. Equivalent in effect to a unit clause but kept
// separate so callers can distinguish "the puzzle's fixed facts" from "the
// puzzle's rules" when reasoning about failures.
func (s *Solver) Assume(lits ...Lit) {
	s.assume = append(s.assume, lits...)
}

// decisionFrame is one entry on the search stack: the variable decided,
// where the trail stood before deciding it, and whether the false branch
// has already been tried.
type decisionFrame struct {
	v          int
	trailMark  int
	triedFalse bool
}

// Solve runs unit propagation and chronological-backtracking search to a
// fixpoint, returning the first satisfying assignment found or Sat: false
// if the instance is unsatisfiable.
// Complexity: worst case exponential in numVars, as for any DPLL search;
// unit propagation resolves most of this encoding's structure in practice.
func (s *Solver) Solve() Result {
	for _, cl := range s.clauses {
		if len(cl) == 0 {
			// An empty clause is a disjunction of nothing: vacuously false,
			// so the instance is unsatisfiable regardless of assumptions or
			// propagation. buildOccurrences never indexes a litless clause
			// (it has no variable to index it under), so this must be
			// checked explicitly rather than relying on propagateClause.
			return Result{Sat: false}
		}
	}

	assign := make([]int8, s.numVars) // 0 = unassigned, 1 = true, -1 = false
	s.buildOccurrences()

	var trail []int
	queue := make([]int, 0, s.numVars)

	setVar := func(v int, val int8) bool {
		if assign[v] != 0 {
			return assign[v] == val
		}
		assign[v] = val
		trail = append(trail, v)
		queue = append(queue, v)
		return true
	}

	propagate := func() bool {
		for len(queue) > 0 {
			v := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			for _, ci := range s.occursIn[v] {
				if !s.propagateClause(s.clauses[ci], assign, setVar) {
					return false
				}
			}
		}
		return true
	}

	for _, lit := range s.assume {
		want := int8(-1)
		if lit.Positive() {
			want = 1
		}
		if !setVar(int(lit.Var()), want) {
			return Result{Sat: false}
		}
	}
	if !propagate() {
		return Result{Sat: false}
	}

	var stack []decisionFrame
	for {
		if !propagate() {
			if !backtrack(&stack, &trail, assign, &queue) {
				return Result{Sat: false}
			}
			continue
		}

		v, ok := firstUnassigned(assign)
		if !ok {
			model := make([]bool, s.numVars)
			for i, a := range assign {
				model[i] = a == 1
			}
			return Result{Sat: true, Model: model}
		}

		mark := len(trail)
		assign[v] = 1
		trail = append(trail, v)
		queue = append(queue, v)
		stack = append(stack, decisionFrame{v: v, trailMark: mark})
	}
}

// propagateClause checks one clause under the current assignment and, if it
// has become unit, extends the assignment via setVar. Returns false if the
// clause is already falsified (a conflict).
func (s *Solver) propagateClause(cl Clause, assign []int8, setVar func(int, int8) bool) bool {
	unassignedCount := 0
	var pending Lit
	for _, lit := range cl {
		v := int(lit.Var())
		switch assign[v] {
		case 0:
			unassignedCount++
			pending = lit
		default:
			if (assign[v] == 1) == lit.Positive() {
				return true // clause already satisfied
			}
		}
	}
	if unassignedCount == 0 {
		return false
	}
	if unassignedCount == 1 {
		want := int8(-1)
		if pending.Positive() {
			want = 1
		}
		return setVar(int(pending.Var()), want)
	}
	return true
}

func firstUnassigned(assign []int8) (int, bool) {
	for v, a := range assign {
		if a == 0 {
			return v, true
		}
	}
	return 0, false
}

// backtrack unwinds the search stack to the most recent decision whose
// other branch hasn't been tried, flips it, and reports whether the search
// can continue. It returns false once the stack is exhausted, meaning the
// instance is unsatisfiable.
func backtrack(stack *[]decisionFrame, trail *[]int, assign []int8, queue *[]int) bool {
	for len(*stack) > 0 {
		top := &(*stack)[len(*stack)-1]
		for len(*trail) > top.trailMark {
			u := (*trail)[len(*trail)-1]
			*trail = (*trail)[:len(*trail)-1]
			assign[u] = 0
		}
		*queue = (*queue)[:0]
		if !top.triedFalse {
			top.triedFalse = true
			assign[top.v] = -1
			*trail = append(*trail, top.v)
			*queue = append(*queue, top.v)
			return true
		}
		*stack = (*stack)[:len(*stack)-1]
	}
	return false
}

func (s *Solver) buildOccurrences() {
	s.occursIn = make([][]int, s.numVars)
	for ci, cl := range s.clauses {
		seen := make(map[int]struct{}, len(cl))
		for _, lit := range cl {
			v := int(lit.Var())
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			s.occursIn[v] = append(s.occursIn[v], ci)
		}
	}
}
