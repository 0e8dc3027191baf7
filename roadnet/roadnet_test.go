package roadnet

import (
	"testing"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.fiblab.net/sim/lattice/v2/lattice/algo"
)

// 两条沿+x首尾相接的道路，road 2上另有一条对向车道
func testMapData() *MapData {
	return &MapData{
		Roads: []*RoadData{
			{ID: 1, LaneIDs: []int32{-11}, SuccessorID: 2},
			{ID: 2, LaneIDs: []int32{-21, 22}, PredecessorID: 1},
		},
		Lanes: []*LaneData{
			{ID: -11, RoadID: 1, Width: 3.5, CenterLine: []PointData{{X: 0, Y: 0}, {X: 50, Y: 0}}},
			{ID: -21, RoadID: 2, Width: 3.5, CenterLine: []PointData{{X: 50, Y: 0}, {X: 130, Y: 0}}},
			{ID: 22, RoadID: 2, Width: 3.5, CenterLine: []PointData{{X: 50, Y: 3}, {X: 130, Y: 3}}},
		},
	}
}

func TestNewDerivesLength(t *testing.T) {
	n, err := New(testMapData())
	require.NoError(t, err)

	// 道路长度缺省时取第一条车道中心线长度
	length, err := n.RoadLength(1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, length)
	length, err = n.RoadLength(2)
	require.NoError(t, err)
	assert.Equal(t, 80.0, length)

	_, err = n.RoadLength(99)
	assert.Error(t, err)
}

func TestNewValidation(t *testing.T) {
	data := testMapData()
	data.Lanes[0].ID = 0
	_, err := New(data)
	assert.Error(t, err)

	data = testMapData()
	data.Lanes[0].CenterLine = data.Lanes[0].CenterLine[:1]
	_, err = New(data)
	assert.Error(t, err)

	data = testMapData()
	data.Roads[0].LaneIDs = []int32{-99}
	_, err = New(data)
	assert.Error(t, err)

	data = testMapData()
	data.Lanes[0].RoadID = 2
	_, err = New(data)
	assert.Error(t, err)

	data = testMapData()
	data.Roads[0].LaneIDs = nil
	_, err = New(data)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	n, err := New(testMapData())
	require.NoError(t, err)

	pos, ok := n.Resolve(geometry.Point{X: 10, Y: 0.5})
	require.True(t, ok)
	assert.Equal(t, algo.RoadPosition{RoadID: 1, LaneID: -11, S: 10}, pos)

	// 横向最近的车道胜出
	pos, ok = n.Resolve(geometry.Point{X: 70, Y: 2.9})
	require.True(t, ok)
	assert.Equal(t, algo.RoadPosition{RoadID: 2, LaneID: 22, S: 20}, pos)

	// 超出最大投影距离
	_, ok = n.Resolve(geometry.Point{X: 10, Y: 50})
	assert.False(t, ok)
}

func TestRoadLinks(t *testing.T) {
	n, err := New(testMapData())
	require.NoError(t, err)

	next, ok := n.NextRoad(1)
	require.True(t, ok)
	assert.Equal(t, int32(2), next)
	prev, ok := n.PrevRoad(2)
	require.True(t, ok)
	assert.Equal(t, int32(1), prev)

	_, ok = n.PrevRoad(1)
	assert.False(t, ok)
	_, ok = n.NextRoad(2)
	assert.False(t, ok)
}

func TestNext(t *testing.T) {
	n, err := New(testMapData())
	require.NoError(t, err)

	// 道路内前进
	pos, ok := n.Next(algo.RoadPosition{RoadID: 1, LaneID: -11, S: 10}, 5)
	require.True(t, ok)
	assert.Equal(t, algo.RoadPosition{RoadID: 1, LaneID: -11, S: 15}, pos)

	// 恰好到达道路末端时不跨路
	pos, ok = n.Next(algo.RoadPosition{RoadID: 1, LaneID: -11, S: 49}, 1)
	require.True(t, ok)
	assert.Equal(t, algo.RoadPosition{RoadID: 1, LaneID: -11, S: 50}, pos)

	// 跨入后继道路上的同向车道
	pos, ok = n.Next(algo.RoadPosition{RoadID: 1, LaneID: -11, S: 49}, 2)
	require.True(t, ok)
	assert.Equal(t, algo.RoadPosition{RoadID: 2, LaneID: -21, S: 1}, pos)

	// 正lane逆参考线方向行驶，S随前进减小
	pos, ok = n.Next(algo.RoadPosition{RoadID: 2, LaneID: 22, S: 30}, 5)
	require.True(t, ok)
	assert.Equal(t, algo.RoadPosition{RoadID: 2, LaneID: 22, S: 25}, pos)

	// 没有后继道路
	_, ok = n.Next(algo.RoadPosition{RoadID: 2, LaneID: -21, S: 79}, 2)
	assert.False(t, ok)

	// 后继id指向未载入的道路，按道路到头处理而不是崩溃
	dangling, err := New(&MapData{
		Roads: []*RoadData{{ID: 1, LaneIDs: []int32{-11}, SuccessorID: 99}},
		Lanes: []*LaneData{
			{ID: -11, RoadID: 1, Width: 3.5, CenterLine: []PointData{{X: 0, Y: 0}, {X: 50, Y: 0}}},
		},
	})
	require.NoError(t, err)
	_, ok = dangling.Next(algo.RoadPosition{RoadID: 1, LaneID: -11, S: 49.5}, 1)
	assert.False(t, ok)

	// lane id 0非法
	_, ok = n.Next(algo.RoadPosition{RoadID: 1, LaneID: 0, S: 10}, 1)
	assert.False(t, ok)
}

func TestLanePositionByS(t *testing.T) {
	n, err := New(testMapData())
	require.NoError(t, err)

	lane := n.lanes[-11]
	p := lane.positionByS(10)
	assert.InDelta(t, 10.0, p.X, 1e-9)
	assert.InDelta(t, 0.0, p.Y, 1e-9)

	// 越界s被夹到折线范围内
	p = lane.positionByS(-5)
	assert.Equal(t, 0.0, p.X)
	p = lane.positionByS(1000)
	assert.Equal(t, 50.0, p.X)
}
