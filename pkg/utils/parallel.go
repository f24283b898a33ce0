package utils

import (
	"sync"
)

// ParallelMap 以最多 workers 个 goroutine 并发映射 items，
// 返回结果与输入一一对应且顺序一致。
// 单元素输入直接同步处理，不起 goroutine。
func ParallelMap[T any, R any](items []T, workers int, fn func(T) R) []R {
	if len(items) == 0 {
		return nil
	}
	if len(items) == 1 {
		return []R{fn(items[0])}
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	results := make([]R, len(items))
	indexCh := make(chan int, len(items))
	for i := range items {
		indexCh <- i
	}
	close(indexCh)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexCh {
				results[i] = fn(items[i])
			}
		}()
	}
	wg.Wait()
	return results
}
