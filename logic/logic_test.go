package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numberlink/cdcl"
	"github.com/katalvlaran/numberlink/logic"
)

func solve(numVars int, clauses [][]cdcl.Lit) cdcl.Result {
	s := cdcl.New(numVars)
	for _, c := range clauses {
		s.AddClause(c)
	}
	return s.Solve()
}

func TestExactlyOneForcesSingleTrue(t *testing.T) {
	lits := []cdcl.Lit{cdcl.PosLit(0), cdcl.PosLit(1), cdcl.PosLit(2)}
	res := solve(3, logic.ExactlyOne(lits))
	require.True(t, res.Sat)

	count := 0
	for _, v := range res.Model {
		if v {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExactlyOneEmptyIsUnsatisfiable(t *testing.T) {
	res := solve(0, logic.ExactlyOne(nil))
	assert.False(t, res.Sat, "exactly one of zero literals can never hold")
}

func TestAtMostOneAllowsZeroTrue(t *testing.T) {
	lits := []cdcl.Lit{cdcl.PosLit(0), cdcl.PosLit(1)}
	clauses := logic.AtMostOne(lits)
	s := cdcl.New(2)
	for _, c := range clauses {
		s.AddClause(c)
	}
	s.Assume(cdcl.NegLit(0), cdcl.NegLit(1))

	res := s.Solve()
	assert.True(t, res.Sat, "expected satisfiable with both false")
}

func TestIffLinksBothDirections(t *testing.T) {
	res := solve(2, logic.Iff(cdcl.PosLit(0), cdcl.PosLit(1)))
	require.True(t, res.Sat)
	assert.Equal(t, res.Model[0], res.Model[1])
}
