package lattice

import "fmt"

// sortRoads 将无序道路集合连成一条前向链
// 假定输入道路彼此邻近且无并行道路：从任意一条出发，前后各扩张至多
// sortRounds轮即可覆盖全集，否则判定输入车辆不构成局部交通。
// 扩张过程中可能引入集合外的道路以填补空档，完成后裁掉两端的填充道路，
// 保证返回链的首尾都属于输入集合。
func (t *TrafficLattice) sortRoads(roads map[int32]bool) ([]int32, error) {
	remaining := make(map[int32]bool, len(roads))
	for id := range roads {
		remaining[id] = true
	}

	// 任取一条道路作为种子
	sorted := make([]int32, 0, len(roads))
	for id := range remaining {
		sorted = append(sorted, id)
		delete(remaining, id)
		break
	}

	for i := 0; i < t.sortRounds; i++ {
		if prev, ok := t.router.PrevRoad(sorted[0]); ok {
			sorted = append([]int32{prev}, sorted...)
			delete(remaining, prev)
		}
		if next, ok := t.router.NextRoad(sorted[len(sorted)-1]); ok {
			sorted = append(sorted, next)
			delete(remaining, next)
		}
		if len(remaining) == 0 {
			break
		}
	}
	if len(remaining) != 0 {
		return nil, fmt.Errorf("%w: %d roads left after %d rounds",
			ErrUnsortableRoads, len(remaining), t.sortRounds)
	}

	// 裁掉两端仅作填充的道路
	for len(sorted) > 0 && !roads[sorted[0]] {
		sorted = sorted[1:]
	}
	for len(sorted) > 0 && !roads[sorted[len(sorted)-1]] {
		sorted = sorted[:len(sorted)-1]
	}
	return sorted, nil
}
