package utils

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelMap_PreservesOrder(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	results := ParallelMap(items, 8, func(v int) int { return v * 2 })
	assert.Len(t, results, 100)
	for i, r := range results {
		assert.Equal(t, i*2, r)
	}
}

func TestParallelMap_Empty(t *testing.T) {
	assert.Nil(t, ParallelMap(nil, 4, func(v int) int { return v }))
}

// 单元素同步处理
func TestParallelMap_Single(t *testing.T) {
	var calls int64
	results := ParallelMap([]string{"a"}, 4, func(s string) string {
		atomic.AddInt64(&calls, 1)
		return s + "!"
	})
	assert.Equal(t, []string{"a!"}, results)
	assert.Equal(t, int64(1), calls)
}

// worker 数不合法时退化为串行，仍处理全部元素
func TestParallelMap_InvalidWorkers(t *testing.T) {
	results := ParallelMap([]int{1, 2, 3}, 0, func(v int) int { return v + 1 })
	assert.Equal(t, []int{2, 3, 4}, results)
}

func TestPartitionHashBytes(t *testing.T) {
	sig := make([]byte, 64)
	for i := range sig {
		sig[i] = byte(i)
	}

	p := PartitionHashBytes(sig, 8)
	assert.Less(t, p, uint32(8))
	// 同一输入分区稳定
	assert.Equal(t, p, PartitionHashBytes(sig, 8))

	// 输入过短时退化为 0 分区
	assert.Equal(t, uint32(0), PartitionHashBytes([]byte{1, 2, 3}, 8))
}
