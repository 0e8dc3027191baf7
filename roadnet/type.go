package roadnet

// 地图数据的序列化格式
// mongo中按{class: "road"|"lane", data: {...}}逐文档存储，
// 本地文件中为一个包含roads/lanes两个数组的JSON对象

type PointData struct {
	X float64 `bson:"x" json:"x"`
	Y float64 `bson:"y" json:"y"`
	Z float64 `bson:"z,omitempty" json:"z,omitempty"`
}

type LaneData struct {
	// lane id带符号：正lane逆参考线方向行驶，负lane沿参考线方向行驶，0保留为非法值
	ID         int32       `bson:"id" json:"id"`
	RoadID     int32       `bson:"road_id" json:"road_id"`
	Width      float64     `bson:"width" json:"width"`
	CenterLine []PointData `bson:"center_line" json:"center_line"`
}

type RoadData struct {
	ID      int32   `bson:"id" json:"id"`
	Length  float64 `bson:"length,omitempty" json:"length,omitempty"` // 缺省时取第一条车道中心线长度
	LaneIDs []int32 `bson:"lane_ids" json:"lane_ids"`
	// 行驶方向上的前驱/后继道路，0表示无
	PredecessorID int32 `bson:"predecessor_id,omitempty" json:"predecessor_id,omitempty"`
	SuccessorID   int32 `bson:"successor_id,omitempty" json:"successor_id,omitempty"`
}

type MapData struct {
	Roads []*RoadData `json:"roads"`
	Lanes []*LaneData `json:"lanes"`
}
