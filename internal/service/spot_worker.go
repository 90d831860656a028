package service

import (
	"context"
	"log"
	"sync"
	"time"

	"spotlist-analytics-service/internal/model"
	"spotlist-analytics-service/internal/repository"
)

// SpotBatchWorker decouples dataset uploads from ClickHouse inserts: spots
// are queued and flushed in batches, either when the batch fills or on a
// timer tick.
type SpotBatchWorker interface {
	Enqueue(spot model.StoredSpot)
	Shutdown()
}

type batchSpotWorker struct {
	repo          repository.SpotRepository
	queue         chan model.StoredSpot
	batchSize     int
	flushInterval time.Duration
	wg            sync.WaitGroup
}

// NewBatchSpotWorker starts the background flush loop. Enqueue blocks when
// the buffer is full, which back-pressures uploads instead of dropping
// spots.
func NewBatchSpotWorker(repo repository.SpotRepository, bufferSize, batchSize int, interval time.Duration) *batchSpotWorker {
	worker := &batchSpotWorker{
		repo:          repo,
		queue:         make(chan model.StoredSpot, bufferSize),
		batchSize:     batchSize,
		flushInterval: interval,
	}
	worker.wg.Add(1)
	go worker.startLoop()
	return worker
}

func (w *batchSpotWorker) Enqueue(spot model.StoredSpot) {
	w.queue <- spot
}

// Shutdown closes the queue and waits for the loop to drain it.
func (w *batchSpotWorker) Shutdown() {
	close(w.queue)
	w.wg.Wait()
}

func (w *batchSpotWorker) startLoop() {
	defer w.wg.Done()

	var batch []model.StoredSpot
	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case spot, ok := <-w.queue:
			if !ok {
				if len(batch) > 0 {
					w.bulkInsert(batch)
				}
				return
			}

			batch = append(batch, spot)
			if len(batch) >= w.batchSize {
				w.bulkInsert(batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				w.bulkInsert(batch)
				batch = nil
			}
		}
	}
}

func (w *batchSpotWorker) bulkInsert(spots []model.StoredSpot) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := w.repo.InsertSpots(ctx, spots); err != nil {
		log.Printf("[ERROR] bulk insert failed: %v", err)
		return
	}
	log.Printf("[INFO] %d spots flushed", len(spots))
}
