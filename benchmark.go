package main

import (
	"flag"
	"runtime"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/sirupsen/logrus"

	"git.fiblab.net/sim/lattice/v2/lattice"
	"git.fiblab.net/sim/lattice/v2/roadnet"
)

var (
	benchmarkCount = flag.Int("benchmark.count", 1000, "the lattice build count for benchmark")
	benchmarkCPU   = flag.Int("benchmark.cpu", 1, "the cpu count for benchmark")
)

// runBenchmark 反复从同一帧快照构建lattice，统计耗时与结果分布
// 每次构建都是独立的短生命周期实例，可以安全并发
func runBenchmark(vehicles []lattice.Vehicle, net *roadnet.RoadNet, cfg *lattice.Config) {
	log.Logger.SetLevel(logrus.WarnLevel)

	success := xsync.NewCounter()
	failures := xsync.NewMapOf[string, *xsync.Counter]()
	build := func() {
		if _, err := lattice.New(vehicles, net, net, cfg); err != nil {
			c, _ := failures.LoadOrCompute(err.Error(), xsync.NewCounter)
			c.Inc()
		} else {
			success.Inc()
		}
	}

	// 开始benchmark
	start := time.Now()
	if *benchmarkCPU == 1 {
		for i := 0; i < *benchmarkCount; i++ {
			build()
		}
	} else {
		// 设置cpu数量
		runtime.GOMAXPROCS(*benchmarkCPU)
		var wg sync.WaitGroup
		wg.Add(*benchmarkCount)
		for i := 0; i < *benchmarkCount; i++ {
			go func() {
				defer wg.Done()
				build()
			}()
		}
		wg.Wait()
	}
	timeCost := time.Since(start) * time.Duration(*benchmarkCPU)
	log.Error(
		"benchmark finished", "\n",
		"count:", *benchmarkCount, "\n",
		"time:", timeCost, "\n",
		"avg:", timeCost/time.Duration(*benchmarkCount), "\n",
		"success:", success.Value(), "\n",
	)
	failures.Range(func(msg string, c *xsync.Counter) bool {
		log.Error("failure x", c.Value(), ": ", msg, "\n")
		return true
	})
}
