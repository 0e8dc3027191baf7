package algo

// RoadPosition 道路坐标系下的位置
// LaneID的符号表示行驶方向：正lane逆参考线方向行驶（距道路起点的行驶距离 = 道路长度 - S），
// 负lane沿参考线方向行驶（行驶距离 = S）。LaneID == 0 非法。
type RoadPosition struct {
	RoadID int32
	LaneID int32
	S      float64 // 距参考线起点的弧长偏移（米）
}

// 同一(道路,车道)上结点索引的键
type laneKey struct {
	RoadID int32
	LaneID int32
}

func (p RoadPosition) key() laneKey {
	return laneKey{RoadID: p.RoadID, LaneID: p.LaneID}
}

// NodeID 结点在lattice内部arena中的下标
// 外部只持有NodeID而不持有结点指针，结点的生命周期完全属于Lattice
type NodeID int

const NilNode NodeID = -1

// RoadGeometry Extend推进lattice所需的道路几何能力
type RoadGeometry interface {
	// 从pos沿行驶方向前进step米，跨road边界时进入后继road
	// 道路到头时返回false
	Next(pos RoadPosition, step float64) (RoadPosition, bool)
}
