package workers

import (
	"context"
	"log"
	"time"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

// DashboardBuilder recomputes a user's full read model.
type DashboardBuilder interface {
	Build(ctx context.Context, userID string, now time.Time) (*domain.Dashboard, error)
}

// SnapshotStore receives the rebuilt dashboard.
type SnapshotStore interface {
	Set(ctx context.Context, userID string, d *domain.Dashboard) error
}

type RefreshJob struct {
	UserID string
}

// RefreshWorker rebuilds dashboard snapshots in the background after
// writes, keeping the cache warm so reads stay cheap. Jobs are dropped
// when the queue is full; the next write or the day-boundary staleness
// check triggers the rebuild instead.
type RefreshWorker struct {
	builder DashboardBuilder
	store   SnapshotStore
	jobs    chan RefreshJob
	now     func() time.Time
}

func NewRefreshWorker(builder DashboardBuilder, store SnapshotStore) *RefreshWorker {
	return &RefreshWorker{
		builder: builder,
		store:   store,
		jobs:    make(chan RefreshJob, 100),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (w *RefreshWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Refresh Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Refresh Worker shutting down...")
				return
			}
		}
	}()
}

func (w *RefreshWorker) Enqueue(userID string) {
	select {
	case w.jobs <- RefreshJob{UserID: userID}:
	default:
		log.Printf("Refresh Worker queue full! Dropping job for user %s", userID)
	}
}

func (w *RefreshWorker) processJob(ctx context.Context, job RefreshJob) {
	dashboard, err := w.builder.Build(ctx, job.UserID, w.now())
	if err != nil {
		log.Printf("Worker Error rebuilding dashboard for %s: %v", job.UserID, err)
		return
	}

	if err := w.store.Set(ctx, job.UserID, dashboard); err != nil {
		log.Printf("Worker Failed to store snapshot for %s: %v", job.UserID, err)
		return
	}
}
