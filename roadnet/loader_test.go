package roadnet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	content := `{
		"roads": [
			{"id": 1, "lane_ids": [-11], "successor_id": 2},
			{"id": 2, "length": 80, "lane_ids": [-21], "predecessor_id": 1}
		],
		"lanes": [
			{"id": -11, "road_id": 1, "width": 3.5, "center_line": [{"x": 0, "y": 0}, {"x": 50, "y": 0}]},
			{"id": -21, "road_id": 2, "width": 3.5, "center_line": [{"x": 50, "y": 0}, {"x": 130, "y": 0}]}
		]
	}`
	path := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	data, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, data.Roads, 2)
	require.Len(t, data.Lanes, 2)
	assert.Equal(t, int32(2), data.Roads[0].SuccessorID)
	assert.Equal(t, 80.0, data.Roads[1].Length)
	assert.Len(t, data.Lanes[0].CenterLine, 2)

	n, err := New(data)
	require.NoError(t, err)
	length, err := n.RoadLength(1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, length)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
