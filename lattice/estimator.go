package lattice

import (
	"sort"
)

// startAndSpan 由车辆集合推算lattice的起点与总跨度
// 起点为全局最前车辆的车尾参考点，跨度保证覆盖全局最后车辆的车头参考点
func (t *TrafficLattice) startAndSpan(vehicles []Vehicle) (RoadPosition, float64, error) {
	byID := make(map[int32]Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	// 按道路分组，缓存每辆车中心距道路起点的行驶距离
	distances := make(map[int32]float64, len(vehicles))
	roadVehicles := make(map[int32][]int32)
	for _, v := range vehicles {
		wp, err := t.vehicleWaypoint(v)
		if err != nil {
			return RoadPosition{}, 0, err
		}
		d, err := t.distanceFromRoadStart(wp)
		if err != nil {
			return RoadPosition{}, 0, err
		}
		distances[v.ID] = d
		roadVehicles[wp.RoadID] = append(roadVehicles[wp.RoadID], v.ID)
	}

	// 每条道路内按距道路起点的行驶距离升序
	for _, ids := range roadVehicles {
		sort.Slice(ids, func(i, j int) bool {
			return distances[ids[i]] < distances[ids[j]]
		})
	}

	// 道路连成链
	roads := make(map[int32]bool, len(roadVehicles))
	for id := range roadVehicles {
		roads[id] = true
	}
	sorted, err := t.sortRoads(roads)
	if err != nil {
		return RoadPosition{}, 0, err
	}
	log.Debugf("sorted %d roads into chain %v", len(roads), sorted)

	// 全局最前/最后的车辆及其车尾/车头参考点
	firstRoad := roadVehicles[sorted[0]]
	lastRoad := roadVehicles[sorted[len(sorted)-1]]
	first := byID[firstRoad[0]]
	last := byID[lastRoad[len(lastRoad)-1]]

	rear, err := t.vehicleRearWaypoint(first)
	if err != nil {
		return RoadPosition{}, 0, err
	}
	head, err := t.vehicleHeadWaypoint(last)
	if err != nil {
		return RoadPosition{}, 0, err
	}

	// 跨度 = 链上所有道路长度之和，再按两端车辆的实际位置修剪。
	// 参考点由包围盒推出，可能落在只由车辆中心建出的链之外的道路上，
	// 此时不修剪而是加固定补偿，保证后续建出的lattice仍覆盖该点。
	span := 0.0
	for _, id := range sorted {
		length, err := t.net.RoadLength(id)
		if err != nil {
			return RoadPosition{}, 0, err
		}
		span += length
	}

	if rear.RoadID == sorted[0] {
		d, err := t.distanceFromRoadStart(rear)
		if err != nil {
			return RoadPosition{}, 0, err
		}
		span -= d
	} else {
		span += offChainMargin
	}

	if head.RoadID == sorted[len(sorted)-1] {
		length, err := t.net.RoadLength(head.RoadID)
		if err != nil {
			return RoadPosition{}, 0, err
		}
		d, err := t.distanceFromRoadStart(head)
		if err != nil {
			return RoadPosition{}, 0, err
		}
		span -= length - d
	} else {
		span += offChainMargin
	}

	return rear, span, nil
}
