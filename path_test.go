package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPath(t *testing.T) {
	// 存在的文件优先按文件解析
	file := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))
	p, err := NewPath(file)
	require.NoError(t, err)
	assert.Equal(t, file, p.File)
	assert.Equal(t, file, p.String())

	// db.coll形式
	p, err = NewPath("simdb.maps")
	require.NoError(t, err)
	assert.Equal(t, "simdb", p.DB)
	assert.Equal(t, "maps", p.Coll)
	assert.Equal(t, "simdb.maps", p.String())

	// 空串表示未指定
	p, err = NewPath("")
	require.NoError(t, err)
	assert.Nil(t, p)

	// 多余的分段非法
	_, err = NewPath("a.b.c")
	assert.Error(t, err)
}
