package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBresenhamLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []Point
	}{
		{"single", 2, 2, 2, 2, []Point{{2, 2}}},
		{"horizontal", 0, 0, 3, 0, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", 1, 3, 1, 0, []Point{{1, 3}, {1, 2}, {1, 1}, {1, 0}}},
		{"diagonal", 0, 0, 2, 2, []Point{{0, 0}, {1, 1}, {2, 2}}},
		{"shallow", 0, 0, 4, 2, []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BresenhamLine(tt.x0, tt.y0, tt.x1, tt.y1))
		})
	}
}

func TestFindPath_ShortestExcludesStart(t *testing.T) {
	g := openGrid(t, 8, 8)
	path := FindPath(g, Pt(1, 1), Pt(4, 3), Unrestricted)
	require.Len(t, path, 5)
	assert.Equal(t, Pt(4, 3), path[len(path)-1])
	assert.NotContains(t, path, Pt(1, 1))

	prev := Pt(1, 1)
	for _, p := range path {
		assert.Equal(t, 1, prev.DistSq(p), "each step is orthogonal")
		prev = p
	}
}

func TestFindPath_SameCellIsEmpty(t *testing.T) {
	g := openGrid(t, 4, 4)
	assert.Empty(t, FindPath(g, Pt(1, 1), Pt(1, 1), Unrestricted))
}

func TestFindPath_Unreachable(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#..#..#",
		"#######",
	)
	assert.Empty(t, FindPath(g, Pt(1, 1), Pt(5, 1), Unrestricted))
}

func TestFindPath_ClosedDoorBlocks(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#..+..#",
		"#######",
	)
	assert.Empty(t, FindPath(g, Pt(1, 1), Pt(5, 1), Unrestricted))
	g.Set(3, 1, TileDoorOpen)
	assert.Len(t, FindPath(g, Pt(1, 1), Pt(5, 1), Unrestricted), 4)
}

func TestFindPath_AdversaryAvoidsVents(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#..v..#",
		"#######",
	)
	assert.Len(t, FindPath(g, Pt(1, 1), Pt(5, 1), Unrestricted), 4)
	assert.Empty(t, FindPath(g, Pt(1, 1), Pt(5, 1), Adversary))
}

func TestFindPath_AdversaryDetour(t *testing.T) {
	g := mustParse(t,
		"#######",
		"#..v..#",
		"#.....#",
		"#######",
	)
	path := FindPath(g, Pt(1, 1), Pt(5, 1), Adversary)
	require.NotEmpty(t, path)
	assert.NotContains(t, path, Pt(3, 1))
	assert.Len(t, path, 6)
}

func TestNeighbors_Order(t *testing.T) {
	g := openGrid(t, 5, 5)
	assert.Equal(t,
		[]Point{{2, 3}, {2, 1}, {3, 2}, {1, 2}},
		Neighbors(g, Pt(2, 2), Unrestricted))
}

func TestReachable(t *testing.T) {
	g := mustParse(t,
		"######",
		"#.v.##",
		"######",
	)
	all := Reachable(g, Pt(1, 1), Unrestricted)
	assert.Equal(t, 3, all.Size())

	adv := Reachable(g, Pt(1, 1), Adversary)
	assert.Equal(t, 1, adv.Size())
	assert.True(t, adv.Has(Pt(1, 1)))
}
