package agent

import (
	"context"
	"sync"
	"time"

	"github.com/foresight-io/foresight/config"
	"github.com/foresight-io/foresight/engine"
	"github.com/foresight-io/foresight/graph"
	"github.com/foresight-io/foresight/history"
	"github.com/foresight-io/foresight/logger"
	"github.com/foresight-io/foresight/rest"
	"go.uber.org/zap"
)

const retentionSweepInterval = time.Minute

type Agent struct {
	Config        config.Config
	graph         *graph.InMemoryGraph
	historyLog    *history.Log
	engine        *engine.Engine
	httpServer    *rest.Server
	retentionStop chan struct{}
	shutdown      bool
	shutdownLock  sync.Mutex
	wg            sync.WaitGroup
}

func New(conf config.Config) (*Agent, error) {
	a := &Agent{
		Config: conf,
	}
	setup := []func() error{
		a.setupGraph,
		a.setupHistory,
		a.setupEngine,
		a.setupHttpServer,
	}
	for _, fn := range setup {
		if err := fn(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Agent) setupGraph() error {
	if a.Config.GraphSnapshotFile != "" {
		g, err := graph.LoadFromFile(a.Config.GraphSnapshotFile)
		if err != nil {
			return err
		}
		a.graph = g
		return nil
	}
	if a.Config.StorageType == config.STORAGE_TYPE_REDIS {
		g, err := graph.LoadFromRedis(context.Background(), a.Config.RedisConfig)
		if err != nil {
			logger.Warn("could not load graph snapshot from redis, starting empty", zap.Error(err))
		} else {
			a.graph = g
			return nil
		}
	}
	a.graph = graph.NewInMemoryGraph(nil, nil)
	return nil
}

func (a *Agent) setupHistory() error {
	a.historyLog = history.NewLog()
	var store history.Store
	switch a.Config.StorageType {
	case config.STORAGE_TYPE_REDIS:
		store = history.NewRedisStore(a.Config.RedisConfig)
	default:
		store = history.NewInMemStore()
	}
	a.historyLog.AttachStore(store, &a.wg)
	if a.Config.HistoryRetentionMinutes > 0 {
		a.retentionStop = make(chan struct{})
		retention := time.Duration(a.Config.HistoryRetentionMinutes) * time.Minute
		a.historyLog.StartRetention(retention, retentionSweepInterval, a.retentionStop, &a.wg)
	}
	return nil
}

func (a *Agent) setupEngine() error {
	a.engine = engine.New(a.graph, a.historyLog, nil)
	return nil
}

func (a *Agent) setupHttpServer() error {
	var err error
	a.httpServer, err = rest.NewServer(a.Config.HttpPort, a.engine, a.graph, a.historyLog)
	if err != nil {
		return err
	}
	return nil
}

func (a *Agent) Start() error {
	go func() {
		err := a.httpServer.Start()
		if err != nil {
			_ = a.Shutdown()
			panic(err)
		}
	}()
	return nil
}

func (a *Agent) Shutdown() error {
	logger.Info("shutting down server")
	a.shutdownLock.Lock()
	defer a.shutdownLock.Unlock()
	if a.shutdown {
		return nil
	}
	a.shutdown = true

	shutdown := []func() error{
		a.httpServer.Stop,
		func() error {
			if a.retentionStop != nil {
				a.retentionStop <- struct{}{}
			}
			a.historyLog.StopSink()
			return nil
		},
	}
	for _, fn := range shutdown {
		if err := fn(); err != nil {
			return err
		}
	}
	logger.Info("waiting for all services to shutdown...")
	a.wg.Wait()
	return nil
}
