package lattice

import (
	"errors"

	"git.fiblab.net/general/common/v2/geometry"
	"git.fiblab.net/sim/lattice/v2/lattice/algo"
)

const (
	// 纵向分辨率（米）
	DefaultResolution = 1.0
	// 道路链排序的最大扩张轮数，决定局部交通最多跨越的道路数
	DefaultSortRounds = 5

	// 参考点解析到链外道路时的跨度补偿（米）
	offChainMargin = 5.0
)

var (
	// 错误：road position的lane id为0
	ErrInvalidLanePosition = errors.New("road position has lane id 0")
	// 错误：请求的跨度不大于分辨率
	ErrSpanTooSmall = errors.New("span is too small, should be greater than the longitudinal resolution")
	// 错误：道路集合无法连成一条链（输入车辆不构成局部交通）
	ErrUnsortableRoads = errors.New("the given roads cannot be sorted into a chain")
	// 错误：车辆头/尾参考点附近没有lattice结点
	ErrVehicleOffLattice = errors.New("cannot find nodes on the lattice close to the vehicle")
	// 错误：车尾结点无法沿前向链接走到车头结点
	ErrDisconnectedNodes = errors.New("the head and rear nodes of the vehicle are not connected")
	// 错误：输入车辆之间存在碰撞
	ErrCollision = errors.New("collision detected within the input vehicles")
)

// RoadPosition 道路坐标系位置（定义见algo包）
type RoadPosition = algo.RoadPosition

// Vehicle 一帧快照中的车辆记录，构造后不再修改
type Vehicle struct {
	ID       int32
	Position geometry.Point // 车辆中心
	Yaw      float64        // 朝向角（度，左手系平面坐标）
	Extent   float64        // 沿朝向的半车长（米）
}

// Agent 运行时车辆句柄，入口处一次性转换为Vehicle
type Agent interface {
	ID() int32
	Position() geometry.Point
	Yaw() float64
	Extent() float64
}

// RoadNetwork 道路网查询服务
// 内嵌algo.RoadGeometry：lattice生长所需的几何推进能力由同一个路网句柄提供
type RoadNetwork interface {
	// 将平面位置解析为最近车道上的road position
	Resolve(p geometry.Point) (RoadPosition, bool)
	// 道路参考线长度
	RoadLength(roadID int32) (float64, error)

	algo.RoadGeometry
}

// Router 行驶方向上的道路前驱/后继查询
type Router interface {
	PrevRoad(roadID int32) (int32, bool)
	NextRoad(roadID int32) (int32, bool)
}

// Config 构造参数，零值字段取默认值
type Config struct {
	Resolution float64
	SortRounds int
}
