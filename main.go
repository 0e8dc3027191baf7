package main

import (
	"context"
	"flag"
	"os"
	"time"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"

	"git.fiblab.net/sim/lattice/v2/lattice"
	"git.fiblab.net/sim/lattice/v2/roadnet"
)

var (
	// 配置信息
	mongoURI     = flag.String("mongo_uri", "", "mongo db uri")
	mapPathStr   = flag.String("map", "", "map data [format: {fspath} or {db}.{col}]")
	snapshotPath = flag.String("snapshot", "", "vehicle snapshot json file")
	resolution   = flag.Float64("resolution", lattice.DefaultResolution, "longitudinal resolution of the lattice (m)")
	sortRounds   = flag.Int("sort-rounds", lattice.DefaultSortRounds, "max expansion rounds when chaining roads")
	logLevel     = flag.String("log-level", "info", "log level [debug, info, warn, error, fatal, panic]")

	// 性能测试
	benchmark = flag.Bool("benchmark", false, "benchmark mode")
	pprofAddr = flag.String("pprof", "", "pprof listening address (empty means disable)")

	LOG_LEVELS = map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"fatal": logrus.FatalLevel,
		"panic": logrus.PanicLevel,
	}

	log = logrus.WithField("module", "main")
)

func main() {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	flag.Parse()
	if level, ok := LOG_LEVELS[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		logrus.Fatalf("invalid log level: %s", *logLevel)
	}

	mapPath, err := NewPath(*mapPathStr)
	if err != nil {
		logrus.Fatalf("invalid map path: %s", err)
	}
	if mapPath == nil {
		logrus.Fatal("map path is required")
	}

	// 读地图
	var mapData *roadnet.MapData
	if mapPath.File != "" {
		mapData, err = roadnet.LoadFile(mapPath.File)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		mapData, err = roadnet.LoadMongo(ctx, *mongoURI, mapPath.DB, mapPath.Coll)
	}
	if err != nil {
		log.Fatalf("failed to load map from %s: %v", mapPath, err)
	}
	net, err := roadnet.New(mapData)
	if err != nil {
		log.Fatalf("failed to build road network: %v", err)
	}

	// 读车辆快照
	vehicles, err := loadSnapshot(*snapshotPath)
	if err != nil {
		log.Fatalf("failed to load snapshot from %s: %v", *snapshotPath, err)
	}
	log.Infof("loaded %d vehicles", len(vehicles))

	if *pprofAddr != "" {
		// 启动pprof
		startHTTPDebugger(*pprofAddr)
	}

	cfg := &lattice.Config{Resolution: *resolution, SortRounds: *sortRounds}

	if *benchmark {
		// 性能测试
		runBenchmark(vehicles, net, cfg)
		return
	}

	start := time.Now()
	tl, err := lattice.New(vehicles, net, net, cfg)
	if err != nil {
		log.Errorf("failed to build traffic lattice: %v", err)
		os.Exit(1)
	}
	log.Infof("built lattice with %d nodes in %v, exit at distance %.2f",
		tl.Nodes().Count(), time.Since(start), tl.Nodes().Distance(tl.Exit()))
	for _, v := range vehicles {
		nodes := tl.VehicleNodes(v.ID)
		first, last := nodes[0], nodes[len(nodes)-1]
		log.Infof("vehicle %d occupies %d nodes at distances [%.2f, %.2f]",
			v.ID, len(nodes), tl.Nodes().Distance(first), tl.Nodes().Distance(last))
	}
}
