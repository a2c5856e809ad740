package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numberlink/board"
	"github.com/katalvlaran/numberlink/builder"
	"github.com/katalvlaran/numberlink/location"
	"github.com/katalvlaran/numberlink/shape"
	"github.com/katalvlaran/numberlink/solver"
)

func newBoard(t *testing.T, b *builder.Square) *board.Board[shape.SquareDirection] {
	t.Helper()
	built, err := b.Build()
	require.NoError(t, err)
	return board.New[shape.SquareDirection](built.Graph, built.Dims, built.Affiliations, built.Shape)
}

func TestRenderUnsolvedShowsUppercaseTerminiOnly(t *testing.T) {
	d, err := location.NewDimension(5, 5)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddTermini('A', location.New(0, 0), location.New(1, 4))
	b.AddTermini('B', location.New(2, 0), location.New(1, 3))
	b.AddTermini('C', location.New(2, 1), location.New(2, 4))
	b.AddTermini('D', location.New(4, 0), location.New(3, 3))
	b.AddTermini('E', location.New(4, 1), location.New(3, 4))

	bd := newBoard(t, b)
	got, err := bd.Render()
	require.NoError(t, err)
	assert.Equal(t, "A.B.D\n..C.E\n.....\n.B.D.\n.ACE.\n", got)
}

func TestSolveAndRenderClassic5x5(t *testing.T) {
	d, err := location.NewDimension(5, 5)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddTermini('A', location.New(0, 0), location.New(1, 4))
	b.AddTermini('B', location.New(2, 0), location.New(1, 3))
	b.AddTermini('C', location.New(2, 1), location.New(2, 4))
	b.AddTermini('D', location.New(4, 0), location.New(3, 3))
	b.AddTermini('E', location.New(4, 1), location.New(3, 4))

	bd := newBoard(t, b)
	solved, err := bd.Solve()
	require.NoError(t, err)

	got, err := solved.Render()
	require.NoError(t, err)
	assert.Equal(t, "AbBdD\nabCdE\nabcde\naBcDe\naACEe\n", got)
}

func TestSolveAndRenderLarge12x12(t *testing.T) {
	d, err := location.NewDimension(12, 12)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddTermini('A', location.New(7, 4), location.New(4, 11))
	b.AddTermini('B', location.New(6, 4), location.New(5, 11))
	b.AddTermini('C', location.New(6, 6), location.New(0, 11))
	b.AddTermini('D', location.New(2, 2), location.New(7, 3))
	b.AddTermini('E', location.New(5, 4), location.New(7, 11))
	b.AddTermini('F', location.New(7, 2), location.New(3, 8))
	b.AddTermini('G', location.New(2, 8), location.New(5, 10))

	bd := newBoard(t, b)
	solved, err := bd.Solve()
	require.NoError(t, err)

	got, err := solved.Render()
	require.NoError(t, err)
	want := "ccccceeeeeee\n" +
		"caaacebbbbbe\n" +
		"caDacebFffbe\n" +
		"cadacebDdfbe\n" +
		"cadacEBAdfbe\n" +
		"cadacccadfbe\n" +
		"cadaaaCadfbe\n" +
		"cadddaaadfbe\n" +
		"caGFdddddfbe\n" +
		"cagfffffffbe\n" +
		"cagggGbbbbbe\n" +
		"CaaaABbEeeee\n"
	assert.Equal(t, want, got)
}

func TestSolveAndRenderWithBridge(t *testing.T) {
	d, err := location.NewDimension(5, 5)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddTermini('A', location.New(1, 3), location.New(3, 0))
	b.AddTermini('B', location.New(1, 4), location.New(4, 3))
	b.AddTermini('C', location.New(0, 0), location.New(0, 4))
	b.AddTermini('D', location.New(1, 0), location.New(2, 2))
	b.AddTermini('E', location.New(4, 0), location.New(2, 3))
	b.AddBridge(location.New(2, 1))

	bd := newBoard(t, b)

	unsolved, err := bd.Render()
	require.NoError(t, err)
	assert.Equal(t, "CD.AE\n..+..\n..D..\n.AE.B\nCB...\n", unsolved)

	solved, err := bd.Solve()
	require.NoError(t, err)
	got, err := solved.Render()
	require.NoError(t, err)
	assert.Equal(t, "CDdAE\nca+ae\ncaDee\ncAEeB\nCBbbb\n", got)
}

func TestSolveAndRenderWithWarp(t *testing.T) {
	d, err := location.NewDimension(5, 3)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddTermini('A', location.New(0, 0), location.New(4, 0))
	b.AddTermini('B', location.New(3, 1), location.New(4, 2))
	b.AddTermini('C', location.New(0, 2), location.New(2, 1))
	b.AddTermini('D', location.New(1, 1), location.New(4, 1))
	b.AddWarp(location.New(0, 1), nil)

	bd := newBoard(t, b)

	unsolved, err := bd.Render()
	require.NoError(t, err)
	assert.Equal(t, "A...A\n.DCBD\nC...B\n", unsolved)

	solved, err := bd.Solve()
	require.NoError(t, err)
	got, err := solved.Render()
	require.NoError(t, err)
	assert.Equal(t, "AaaaA\ndDCBD\nCccbB\n", got)
}

func TestSolveUnsolvableInstanceReturnsInconsistent(t *testing.T) {
	d, err := location.NewDimension(3, 1)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddTermini('A', location.New(0, 0), location.New(2, 0))
	b.Disconnect(location.New(0, 0), location.New(1, 0))

	bd := newBoard(t, b)
	_, err = bd.Solve()
	assert.ErrorIs(t, err, solver.Inconsistent)
}

func TestBuilderMisuseFeatureOutOfBoundsProducesNoGraph(t *testing.T) {
	d, err := location.NewDimension(5, 5)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddTermini('A', location.New(5, 0), location.New(0, 0))

	_, err = b.Build()
	require.Error(t, err)

	var invalidErr *builder.InvalidError
	require.ErrorAs(t, err, &invalidErr)
	require.Len(t, invalidErr.Reasons, 1)
	assert.Equal(t, builder.FeatureOutOfBounds, invalidErr.Reasons[0])
}
