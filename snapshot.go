package main

import (
	"encoding/json"
	"os"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/samber/lo"

	"git.fiblab.net/sim/lattice/v2/lattice"
)

// 快照中的单条车辆记录
type vehicleRecord struct {
	ID     int32   `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z,omitempty"`
	Yaw    float64 `json:"yaw"`    // 朝向角（度）
	Extent float64 `json:"extent"` // 半车长（米）
}

// loadSnapshot 读取一帧车辆快照（JSON数组）
func loadSnapshot(path string) ([]lattice.Vehicle, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	records := make([]vehicleRecord, 0)
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	return lo.Map(records, func(r vehicleRecord, _ int) lattice.Vehicle {
		return lattice.Vehicle{
			ID:       r.ID,
			Position: geometry.Point{X: r.X, Y: r.Y, Z: r.Z},
			Yaw:      r.Yaw,
			Extent:   r.Extent,
		}
	}), nil
}
