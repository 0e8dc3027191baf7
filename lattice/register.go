package lattice

import (
	"fmt"

	"git.fiblab.net/sim/lattice/v2/lattice/algo"
)

// registerVehicles 将每辆车占用的结点区间登记到lattice上
// 登记表每次都整体重建；任一失败都会使整个登记作废，调用方应丢弃整个对象
func (t *TrafficLattice) registerVehicles(vehicles []Vehicle) error {
	t.vehicleNodes = make(map[int32][]algo.NodeID, len(vehicles))

	for _, v := range vehicles {
		head, err := t.vehicleHeadWaypoint(v)
		if err != nil {
			return err
		}
		rear, err := t.vehicleRearWaypoint(v)
		if err != nil {
			return err
		}

		// 头尾参考点各自找最近结点，容差为半个分辨率
		headNode, okHead := t.lat.NearestNode(head, t.resolution/2)
		rearNode, okRear := t.lat.NearestNode(rear, t.resolution/2)
		if !okHead || !okRear {
			return fmt.Errorf("%w: vehicle %d", ErrVehicleOffLattice, v.ID)
		}

		// 从车尾结点沿前向链接走到车头结点，途中检查占用
		nodes := make([]algo.NodeID, 0)
		for cur := rearNode; ; {
			if occupant, ok := t.lat.Vehicle(cur); ok {
				return fmt.Errorf("%w: vehicles %d and %d at distance %v",
					ErrCollision, occupant, v.ID, t.lat.Distance(cur))
			}
			nodes = append(nodes, cur)
			if cur == headNode {
				break
			}
			next, ok := t.lat.Front(cur)
			if !ok {
				return fmt.Errorf("%w: vehicle %d", ErrDisconnectedNodes, v.ID)
			}
			cur = next
		}

		// 整段区间确认无冲突后才实际标记占用
		for _, id := range nodes {
			t.lat.SetVehicle(id, v.ID)
		}
		t.vehicleNodes[v.ID] = nodes
		log.Debugf("vehicle %d occupies %d nodes", v.ID, len(nodes))
	}
	return nil
}
