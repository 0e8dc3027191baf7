package lattice

import (
	"fmt"

	"git.fiblab.net/sim/lattice/v2/lattice/algo"
	"github.com/samber/lo"
)

// TrafficLattice 覆盖一帧局部交通的一维纵向坐标系，
// 记录每辆车占用的结点区间，两车footprint重叠时构造失败。
// 构造要么整体成功要么失败，失败后不存在可用的部分状态，
// 每帧快照都应重新构造一个实例。
type TrafficLattice struct {
	resolution float64
	sortRounds int

	net    RoadNetwork
	router Router

	lat *algo.Lattice

	// 车辆id -> 占用结点序列（车尾→车头）
	vehicleNodes map[int32][]algo.NodeID
}

// New 从车辆快照构造TrafficLattice，cfg为nil时取默认参数
func New(vehicles []Vehicle, net RoadNetwork, router Router, cfg *Config) (*TrafficLattice, error) {
	resolution := DefaultResolution
	sortRounds := DefaultSortRounds
	if cfg != nil {
		if cfg.Resolution > 0 {
			resolution = cfg.Resolution
		}
		if cfg.SortRounds > 0 {
			sortRounds = cfg.SortRounds
		}
	}
	if len(vehicles) == 0 {
		return nil, fmt.Errorf("no vehicles to build the lattice from")
	}

	t := &TrafficLattice{
		resolution: resolution,
		sortRounds: sortRounds,
		net:        net,
		router:     router,
	}

	start, span, err := t.startAndSpan(vehicles)
	if err != nil {
		return nil, err
	}
	if span <= resolution {
		return nil, fmt.Errorf("%w: span %v with resolution %v", ErrSpanTooSmall, span, resolution)
	}

	// 先建坐标系再登记车辆，任何一步失败都放弃整个对象
	t.lat = algo.NewLattice(resolution, net)
	t.lat.CreateRoot(start)
	if err := t.lat.Extend(span); err != nil {
		return nil, err
	}
	if err := t.registerVehicles(vehicles); err != nil {
		return nil, err
	}
	return t, nil
}

// NewFromAgents 从运行时车辆句柄构造，句柄在入口处一次性转换为车辆记录
func NewFromAgents(agents []Agent, net RoadNetwork, router Router, cfg *Config) (*TrafficLattice, error) {
	vehicles := lo.Map(agents, func(a Agent, _ int) Vehicle {
		return Vehicle{ID: a.ID(), Position: a.Position(), Yaw: a.Yaw(), Extent: a.Extent()}
	})
	return New(vehicles, net, router, cfg)
}

func (t *TrafficLattice) Resolution() float64 { return t.resolution }

// Entry lattice入口结点
func (t *TrafficLattice) Entry() algo.NodeID { return t.lat.Entry() }

// Exit lattice出口结点
func (t *TrafficLattice) Exit() algo.NodeID { return t.lat.Exit() }

// Nodes 底层坐标系，用于结点属性的只读访问
func (t *TrafficLattice) Nodes() *algo.Lattice { return t.lat }

// VehicleNodes 车辆占用的结点序列（车尾→车头），未登记的车辆返回nil
func (t *TrafficLattice) VehicleNodes(vehicleID int32) []algo.NodeID {
	return t.vehicleNodes[vehicleID]
}

// Vehicles 已登记的车辆id
func (t *TrafficLattice) Vehicles() []int32 {
	return lo.Keys(t.vehicleNodes)
}
