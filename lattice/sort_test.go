package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 按切片顺序首尾相接的道路链
type chainRouter struct {
	chain []int32
}

func (r chainRouter) index(roadID int32) int {
	for i, id := range r.chain {
		if id == roadID {
			return i
		}
	}
	return -1
}

func (r chainRouter) PrevRoad(roadID int32) (int32, bool) {
	if i := r.index(roadID); i > 0 {
		return r.chain[i-1], true
	}
	return 0, false
}

func (r chainRouter) NextRoad(roadID int32) (int32, bool) {
	if i := r.index(roadID); i >= 0 && i < len(r.chain)-1 {
		return r.chain[i+1], true
	}
	return 0, false
}

func newSortOnly(router Router, rounds int) *TrafficLattice {
	return &TrafficLattice{router: router, sortRounds: rounds}
}

func TestSortRoadsSingle(t *testing.T) {
	tl := newSortOnly(chainRouter{chain: []int32{1, 2, 3}}, DefaultSortRounds)
	sorted, err := tl.sortRoads(map[int32]bool{2: true})
	require.NoError(t, err)
	assert.Equal(t, []int32{2}, sorted)
}

func TestSortRoadsOrder(t *testing.T) {
	tl := newSortOnly(chainRouter{chain: []int32{7, 3, 9, 5}}, DefaultSortRounds)
	sorted, err := tl.sortRoads(map[int32]bool{9: true, 5: true, 7: true, 3: true})
	require.NoError(t, err)
	assert.Equal(t, []int32{7, 3, 9, 5}, sorted)
}

func TestSortRoadsGapFill(t *testing.T) {
	// 输入缺少中间的道路3，排序时由router补齐
	tl := newSortOnly(chainRouter{chain: []int32{1, 3, 5}}, DefaultSortRounds)
	sorted, err := tl.sortRoads(map[int32]bool{1: true, 5: true})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 3, 5}, sorted)
}

func TestSortRoadsTrimsFiller(t *testing.T) {
	// 扩张会带入链外的0和9，结果两端必须属于输入集合
	tl := newSortOnly(chainRouter{chain: []int32{0, 1, 2, 9}}, DefaultSortRounds)
	sorted, err := tl.sortRoads(map[int32]bool{1: true, 2: true})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, sorted)
}

func TestSortRoadsUnsortable(t *testing.T) {
	// 两条道路相距6跳，5轮扩张无法覆盖
	tl := newSortOnly(chainRouter{chain: []int32{1, 2, 3, 4, 5, 6, 7}}, DefaultSortRounds)
	_, err := tl.sortRoads(map[int32]bool{1: true, 7: true})
	assert.ErrorIs(t, err, ErrUnsortableRoads)
}

func TestSortRoadsConfigurableRounds(t *testing.T) {
	// 增大轮数后同样的输入可以成链
	tl := newSortOnly(chainRouter{chain: []int32{1, 2, 3, 4, 5, 6, 7}}, 6)
	sorted, err := tl.sortRoads(map[int32]bool{1: true, 7: true})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7}, sorted)
}
