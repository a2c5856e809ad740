package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numberlink/builder"
	"github.com/katalvlaran/numberlink/cell"
	"github.com/katalvlaran/numberlink/location"
	"github.com/katalvlaran/numberlink/shape"
)

func TestBuildPlainGridNodeAndEdgeCounts(t *testing.T) {
	d, err := location.NewDimension(5, 3)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	built, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 15, built.Graph.NodeCount())
	// w(h-1) + h(w-1) = 5*2 + 3*4 = 10 + 12 = 22
	assert.Equal(t, 22, built.Graph.EdgeCount())
}

func TestAddTerminiOutOfBoundsInvalidatesBuilder(t *testing.T) {
	d, err := location.NewDimension(5, 5)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddTermini('A', location.New(5, 0), location.New(0, 0))

	reasons := b.IsValid()
	require.Len(t, reasons, 1)
	assert.Equal(t, builder.FeatureOutOfBounds, reasons[0])

	_, err = b.Build()
	require.Error(t, err)
	var invalidErr *builder.InvalidError
	require.ErrorAs(t, err, &invalidErr)
}

func TestPopTerminiRestoresEmpty(t *testing.T) {
	d, err := location.NewDimension(3, 1)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddTermini('A', location.New(0, 0), location.New(2, 0))
	b.PopTermini()

	built, err := b.Build()
	require.NoError(t, err)
	n, ok := built.Graph.Node("0,0")
	require.True(t, ok)
	assert.Equal(t, cell.Empty, n.Cell.Kind)
}

func TestBridgeLocationHasOneLanePerForwardAxis(t *testing.T) {
	d, err := location.NewDimension(3, 3)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddBridge(location.New(1, 1))

	built, err := b.Build()
	require.NoError(t, err)
	lanes := built.Graph.NodesAt(location.New(1, 1))
	require.Len(t, lanes, 2)
	for _, lane := range lanes {
		assert.Equal(t, cell.Bridge, lane.Cell.Kind)
	}
}

func TestBridgeOnBoundaryInvalidates(t *testing.T) {
	d, err := location.NewDimension(3, 3)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddBridge(location.New(0, 1))

	reasons := b.IsValid()
	require.Len(t, reasons, 1)
	assert.Equal(t, builder.FeatureOutOfBounds, reasons[0])
}

func TestDropLocationRemovesNode(t *testing.T) {
	d, err := location.NewDimension(2, 1)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.DropLocation(location.New(0, 0))

	built, err := b.Build()
	require.NoError(t, err)
	assert.Empty(t, built.Graph.NodesAt(location.New(0, 0)))
	assert.Equal(t, 1, built.Graph.NodeCount())
}

func TestDisconnectRemovesOneEdge(t *testing.T) {
	d, err := location.NewDimension(2, 1)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.Disconnect(location.New(0, 0), location.New(1, 0))

	built, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, built.Graph.EdgeCount())
}

func TestDisconnectNonAdjacentIsNoopAndStaysValid(t *testing.T) {
	d, err := location.NewDimension(5, 5)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.Disconnect(location.New(0, 0), location.New(4, 4))

	assert.Nil(t, b.IsValid())
}

func TestAddWarpOnEdgeConnectsOppositeSide(t *testing.T) {
	d, err := location.NewDimension(5, 3)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddWarp(location.New(0, 1), nil)

	built, err := b.Build()
	require.NoError(t, err)
	left, _ := built.Graph.Node("0,1")
	right, _ := built.Graph.Node("4,1")

	found := false
	for _, e := range built.Graph.Edges(left.ID) {
		if built.Graph.Neighbor(e, left.ID) == right.ID {
			found = true
		}
	}
	assert.True(t, found, "expected a warp edge between (0,1) and (4,1)")
}

func TestAddWarpCornerRequiresDirection(t *testing.T) {
	d, err := location.NewDimension(5, 5)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddWarp(location.New(0, 0), nil)

	reasons := b.IsValid()
	require.Len(t, reasons, 1)
	assert.Equal(t, builder.WarpBadDirection, reasons[0])
}

func TestAddWarpInteriorLocationInvalidates(t *testing.T) {
	d, err := location.NewDimension(5, 5)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.AddWarp(location.New(2, 2), nil)

	reasons := b.IsValid()
	require.Len(t, reasons, 1)
	assert.Equal(t, builder.WarpBadDirection, reasons[0])
}

func TestDisconnectAroundAppliesEachDirection(t *testing.T) {
	d, err := location.NewDimension(3, 3)
	require.NoError(t, err)
	b := builder.NewSquare(d)
	b.DisconnectAround(location.New(1, 1), []shape.SquareDirection{shape.Up, shape.Down, shape.Left, shape.Right})

	built, err := b.Build()
	require.NoError(t, err)
	center, _ := built.Graph.Node("1,1")
	assert.Empty(t, built.Graph.Edges(center.ID))
}
