package algo

import (
	"errors"
	"fmt"
	"log"
	"math"
)

var (
	// 错误：道路在要求的范围之前到头
	ErrRoadEnds = errors.New("road ends before the requested range is reached")
)

// 离散化的纵向位置结点
type node struct {
	pos      RoadPosition
	distance float64 // 距lattice入口的累计距离
	vehicle  int32   // 占用此结点的车辆id
	occupied bool
	front    NodeID
	back     NodeID
}

// Lattice 固定分辨率的一维纵向坐标系
// 结点由内部arena独占持有，前后向链接以NodeID表达
type Lattice struct {
	resolution float64
	geo        RoadGeometry

	nodes     []node
	laneNodes map[laneKey][]NodeID // (road,lane) -> 其上的结点

	entry NodeID
	exit  NodeID
}

func NewLattice(resolution float64, geo RoadGeometry) *Lattice {
	if resolution <= 0 {
		log.Panicf("non-positive resolution %v", resolution)
	}
	return &Lattice{
		resolution: resolution,
		geo:        geo,
		nodes:      make([]node, 0),
		laneNodes:  make(map[laneKey][]NodeID),
		entry:      NilNode,
		exit:       NilNode,
	}
}

func (l *Lattice) Resolution() float64 { return l.resolution }

// CreateRoot 在start处创建入口结点（累计距离0），入口与出口都指向它
func (l *Lattice) CreateRoot(start RoadPosition) NodeID {
	if len(l.nodes) != 0 {
		log.Panicf("lattice already has %d nodes", len(l.nodes))
	}
	return l.addNode(start, 0, NilNode)
}

func (l *Lattice) addNode(pos RoadPosition, distance float64, back NodeID) NodeID {
	id := NodeID(len(l.nodes))
	l.nodes = append(l.nodes, node{
		pos:      pos,
		distance: distance,
		front:    NilNode,
		back:     back,
	})
	if back != NilNode {
		l.nodes[back].front = id
	}
	k := pos.key()
	l.laneNodes[k] = append(l.laneNodes[k], id)
	if l.entry == NilNode {
		l.entry = id
	}
	l.exit = id
	return id
}

// Extend 从出口结点向前以固定分辨率生长，直到出口结点覆盖distance米
// distance不是分辨率的整数倍时，出口结点越过目标距离而不是停在目标之前
func (l *Lattice) Extend(distance float64) error {
	if l.exit == NilNode {
		log.Panic("extend before CreateRoot")
	}
	target := l.nodes[l.exit].distance + distance
	for l.nodes[l.exit].distance < target {
		cur := l.nodes[l.exit]
		next, ok := l.geo.Next(cur.pos, l.resolution)
		if !ok {
			return fmt.Errorf("%w: at distance %v", ErrRoadEnds, cur.distance)
		}
		l.addNode(next, cur.distance+l.resolution, l.exit)
	}
	return nil
}

// NearestNode 在tolerance内寻找与pos同(road,lane)且纵向最近的结点
func (l *Lattice) NearestNode(pos RoadPosition, tolerance float64) (NodeID, bool) {
	best := NilNode
	bestDelta := math.Inf(0)
	for _, id := range l.laneNodes[pos.key()] {
		delta := math.Abs(l.nodes[id].pos.S - pos.S)
		if delta < bestDelta {
			best = id
			bestDelta = delta
		}
	}
	if best == NilNode || bestDelta > tolerance {
		return NilNode, false
	}
	return best, true
}

func (l *Lattice) Entry() NodeID { return l.entry }
func (l *Lattice) Exit() NodeID  { return l.exit }
func (l *Lattice) Count() int    { return len(l.nodes) }

func (l *Lattice) Position(id NodeID) RoadPosition { return l.nodes[id].pos }
func (l *Lattice) Distance(id NodeID) float64      { return l.nodes[id].distance }

// Front 前向相邻结点
func (l *Lattice) Front(id NodeID) (NodeID, bool) {
	f := l.nodes[id].front
	return f, f != NilNode
}

// Back 后向相邻结点
func (l *Lattice) Back(id NodeID) (NodeID, bool) {
	b := l.nodes[id].back
	return b, b != NilNode
}

// Vehicle 结点上登记的车辆id
func (l *Lattice) Vehicle(id NodeID) (int32, bool) {
	n := &l.nodes[id]
	return n.vehicle, n.occupied
}

// SetVehicle 将车辆登记到结点上
func (l *Lattice) SetVehicle(id NodeID, vehicle int32) {
	l.nodes[id].vehicle = vehicle
	l.nodes[id].occupied = true
}
