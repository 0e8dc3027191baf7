package roadnet

import (
	"fmt"
	"math"
	"sort"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/sim/lattice/v2/lattice/algo"
	"github.com/samber/lo"
)

// 将平面点投影到车道时允许的最大横向距离（米）
const maxProjectionDistance = 10.0

// Lane 车道实体
type Lane struct {
	ID     int32
	RoadID int32
	Width  float64

	line        []geometry.Point
	lineLengths []float64
	length      float64
}

// 将s坐标转换为平面坐标（折线上线性插值）
func (l *Lane) positionByS(s float64) geometry.Point {
	s = lo.Clamp(s, 0, l.length)
	i := sort.SearchFloat64s(l.lineLengths, s)
	if i == 0 {
		return l.line[0]
	}
	sHigh, sLow := l.lineLengths[i], l.lineLengths[i-1]
	return geometry.Blend(l.line[i-1], l.line[i], (s-sLow)/(sHigh-sLow))
}

// 将平面点投影到车道折线上，返回s坐标
func (l *Lane) projectToLane(p geometry.Point) float64 {
	s := geometry.GetClosestPolylineSToPoint2D(l.line, l.lineLengths, p)
	return lo.Clamp(s, 0, l.length)
}

// Road 道路实体
type Road struct {
	ID     int32
	Length float64
	Lanes  []*Lane

	predecessorID int32
	successorID   int32
}

// 道路上第一条与laneID同向的车道
func (r *Road) laneWithSign(laneID int32) *Lane {
	for _, lane := range r.Lanes {
		if (lane.ID > 0) == (laneID > 0) {
			return lane
		}
	}
	return nil
}

// RoadNet 内存道路网
// 实现lattice包的RoadNetwork/Router与algo包的RoadGeometry
type RoadNet struct {
	roads map[int32]*Road
	lanes map[int32]*Lane
}

// New 由地图数据构建道路网
func New(data *MapData) (*RoadNet, error) {
	n := &RoadNet{
		roads: make(map[int32]*Road, len(data.Roads)),
		lanes: make(map[int32]*Lane, len(data.Lanes)),
	}
	for _, ld := range data.Lanes {
		if ld.ID == 0 {
			return nil, fmt.Errorf("lane id 0 is reserved as invalid")
		}
		if len(ld.CenterLine) < 2 {
			return nil, fmt.Errorf("lane %d has no center line", ld.ID)
		}
		l := &Lane{
			ID:     ld.ID,
			RoadID: ld.RoadID,
			Width:  ld.Width,
			line: lo.Map(ld.CenterLine, func(p PointData, _ int) geometry.Point {
				return geometry.Point{X: p.X, Y: p.Y, Z: p.Z}
			}),
		}
		l.lineLengths = geometry.GetPolylineLengths2D(l.line)
		l.length = l.lineLengths[len(l.lineLengths)-1]
		n.lanes[ld.ID] = l
	}
	for _, rd := range data.Roads {
		r := &Road{
			ID:            rd.ID,
			Length:        rd.Length,
			predecessorID: rd.PredecessorID,
			successorID:   rd.SuccessorID,
		}
		for _, laneID := range rd.LaneIDs {
			lane, ok := n.lanes[laneID]
			if !ok {
				return nil, fmt.Errorf("road %d references unknown lane %d", rd.ID, laneID)
			}
			if lane.RoadID != rd.ID {
				return nil, fmt.Errorf("lane %d belongs to road %d, not road %d", laneID, lane.RoadID, rd.ID)
			}
			r.Lanes = append(r.Lanes, lane)
		}
		if len(r.Lanes) == 0 {
			return nil, fmt.Errorf("road %d has no lanes", rd.ID)
		}
		if r.Length <= 0 {
			r.Length = r.Lanes[0].length
		}
		n.roads[rd.ID] = r
	}
	log.Debugf("road network built with %d roads and %d lanes", len(n.roads), len(n.lanes))
	return n, nil
}

// Resolve 将平面位置解析为横向最近车道上的road position
func (n *RoadNet) Resolve(p geometry.Point) (algo.RoadPosition, bool) {
	var best *Lane
	bestS := 0.0
	bestLateral := math.Inf(0)
	for _, lane := range n.lanes {
		s := lane.projectToLane(p)
		lateral := geometry.Distance(lane.positionByS(s), p)
		if lateral < bestLateral {
			best = lane
			bestS = s
			bestLateral = lateral
		}
	}
	if best == nil || bestLateral > maxProjectionDistance {
		return algo.RoadPosition{}, false
	}
	return algo.RoadPosition{RoadID: best.RoadID, LaneID: best.ID, S: bestS}, true
}

// RoadLength 道路参考线长度
func (n *RoadNet) RoadLength(roadID int32) (float64, error) {
	road, ok := n.roads[roadID]
	if !ok {
		return 0, fmt.Errorf("road(id=%d) not found", roadID)
	}
	return road.Length, nil
}

// PrevRoad 行驶方向上的前一条道路
func (n *RoadNet) PrevRoad(roadID int32) (int32, bool) {
	road, ok := n.roads[roadID]
	if !ok || road.predecessorID == 0 {
		return 0, false
	}
	return road.predecessorID, true
}

// NextRoad 行驶方向上的后一条道路
func (n *RoadNet) NextRoad(roadID int32) (int32, bool) {
	road, ok := n.roads[roadID]
	if !ok || road.successorID == 0 {
		return 0, false
	}
	return road.successorID, true
}

// s偏移与行驶距离的换算；正lane逆参考线方向行驶
func travelDistance(length, s float64, laneID int32) float64 {
	if laneID > 0 {
		return length - s
	}
	return s
}

func travelOffset(length, d float64, laneID int32) float64 {
	if laneID > 0 {
		return length - d
	}
	return d
}

// Next 从pos沿行驶方向前进step米，必要时跨入后继道路上的同向车道
func (n *RoadNet) Next(pos algo.RoadPosition, step float64) (algo.RoadPosition, bool) {
	if pos.LaneID == 0 {
		return algo.RoadPosition{}, false
	}
	road, ok := n.roads[pos.RoadID]
	if !ok {
		return algo.RoadPosition{}, false
	}
	laneID := pos.LaneID
	d := travelDistance(road.Length, pos.S, laneID) + step
	for d > road.Length {
		nextID, ok := n.NextRoad(road.ID)
		if !ok {
			return algo.RoadPosition{}, false
		}
		// 后继id悬空（未载入该道路）时按道路到头处理
		next, ok := n.roads[nextID]
		if !ok {
			return algo.RoadPosition{}, false
		}
		d -= road.Length
		road = next
		nextLane := road.laneWithSign(laneID)
		if nextLane == nil {
			return algo.RoadPosition{}, false
		}
		laneID = nextLane.ID
	}
	return algo.RoadPosition{
		RoadID: road.ID,
		LaneID: laneID,
		S:      travelOffset(road.Length, d, laneID),
	}, true
}
