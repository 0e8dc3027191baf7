package lattice

import (
	"fmt"
	"math"

	"git.fiblab.net/general/common/v2/geometry"
)

// headPoint 车头参考点：中心沿朝向前移半车长
// 左手系平面坐标，高度直接沿用中心的值
func headPoint(v Vehicle) geometry.Point {
	yaw := v.Yaw / 180 * math.Pi
	return geometry.Point{
		X: v.Position.X + math.Cos(yaw)*v.Extent,
		Y: v.Position.Y + math.Sin(yaw)*v.Extent,
		Z: v.Position.Z,
	}
}

// rearPoint 车尾参考点：中心沿朝向后移半车长
func rearPoint(v Vehicle) geometry.Point {
	yaw := v.Yaw / 180 * math.Pi
	return geometry.Point{
		X: v.Position.X - math.Cos(yaw)*v.Extent,
		Y: v.Position.Y - math.Sin(yaw)*v.Extent,
		Z: v.Position.Z,
	}
}

// 车辆中心对应的road position
func (t *TrafficLattice) vehicleWaypoint(v Vehicle) (RoadPosition, error) {
	pos, ok := t.net.Resolve(v.Position)
	if !ok {
		return RoadPosition{}, fmt.Errorf("vehicle %d is not on any road", v.ID)
	}
	return pos, nil
}

// 车头参考点对应的road position
func (t *TrafficLattice) vehicleHeadWaypoint(v Vehicle) (RoadPosition, error) {
	pos, ok := t.net.Resolve(headPoint(v))
	if !ok {
		return RoadPosition{}, fmt.Errorf("head of vehicle %d is not on any road", v.ID)
	}
	return pos, nil
}

// 车尾参考点对应的road position
func (t *TrafficLattice) vehicleRearWaypoint(v Vehicle) (RoadPosition, error) {
	pos, ok := t.net.Resolve(rearPoint(v))
	if !ok {
		return RoadPosition{}, fmt.Errorf("rear of vehicle %d is not on any road", v.ID)
	}
	return pos, nil
}

// distanceFromRoadStart 距道路起点的行驶距离
// lane id的符号约定只在这里出现，替换路网表示时只需改这一处
func (t *TrafficLattice) distanceFromRoadStart(pos RoadPosition) (float64, error) {
	if pos.LaneID == 0 {
		return 0, fmt.Errorf("%w: road %d", ErrInvalidLanePosition, pos.RoadID)
	}
	length, err := t.net.RoadLength(pos.RoadID)
	if err != nil {
		return 0, err
	}
	if pos.LaneID > 0 {
		return length - pos.S, nil
	}
	return pos.S, nil
}
