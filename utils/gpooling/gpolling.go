package gpooling

import (
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"vietqr-system/utils/logger"
)

// Pool - pooling struct
type Pool struct {
	antsPool *ants.Pool
}

// IPool - pooling interface
type IPool interface {
	Submit(task func()) error
	Release()
	Running() int
}

// NewPooling - init pooling, a panicking task is logged and the worker recovered
func NewPooling(maxPoolSize int) (*Pool, error) {
	logTool, err := logger.NewLogger("production")
	if err != nil {
		return nil, err
	}
	pool, err := ants.NewPool(maxPoolSize, ants.WithNonblocking(false), ants.WithPanicHandler(func(data interface{}) {
		logTool.With(zap.Reflect("err-data-pool", data)).Error("err_pool")
	}))
	if err != nil {
		return nil, err
	}
	return &Pool{
		antsPool: pool,
	}, nil
}

// Release - release all gorotine
func (p *Pool) Release() {
	p.antsPool.Release()
}

// Running - returns the number of the currently running goroutines.
func (p *Pool) Running() int {
	return p.antsPool.Running()
}

// Submit - submit a task to this pool, blocks while every worker is busy
func (p *Pool) Submit(task func()) error {
	return p.antsPool.Submit(task)
}
