package handlers

import (
	"time"

	"image-gateway/internal/assets"
	"image-gateway/internal/cache"
	"image-gateway/internal/workers"
)

type Handlers struct {
	store     *assets.Store
	responses *cache.Store
	// sem bounds concurrent decode/resize/encode work to the CPU budget so a
	// burst of cache misses cannot start an unbounded number of codec jobs.
	sem       chan struct{}
	startedAt time.Time
}

func New(store *assets.Store, responses *cache.Store, transcodeWorkers int) *Handlers {
	if transcodeWorkers < 1 {
		transcodeWorkers = workers.ForCPU(0)
	}
	return &Handlers{
		store:     store,
		responses: responses,
		sem:       make(chan struct{}, transcodeWorkers),
		startedAt: time.Now(),
	}
}
