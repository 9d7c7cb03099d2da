package services

// Refresher schedules a dashboard snapshot rebuild for a user after a
// write. Implemented by workers.RefreshWorker; a nil-safe no-op keeps the
// services usable without a worker (tests, one-shot tools).
type Refresher interface {
	Enqueue(userID string)
}

type noopRefresher struct{}

func (noopRefresher) Enqueue(string) {}

func orNoop(r Refresher) Refresher {
	if r == nil {
		return noopRefresher{}
	}
	return r
}
