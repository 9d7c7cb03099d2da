package services

import (
	"context"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
	"github.com/ritmolab/ritmo-engine/internal/core/engine"
)

// XPService keeps the lifetime XP total as an explicit, re-derivable
// projection: Recompute reads the authoritative total, ApplyDelta performs
// the optimistic adjustment, and Reconcile overwrites the total when the
// two drift apart. No XP state lives outside the repository.
type XPService struct {
	repo domain.XPRepository
	cfg  engine.Config
}

func NewXPService(repo domain.XPRepository, cfg engine.Config) *XPService {
	return &XPService{
		repo: repo,
		cfg:  cfg,
	}
}

// Recompute derives the level state from the authoritative total.
func (s *XPService) Recompute(ctx context.Context, userID string) (domain.LevelState, error) {
	total, err := s.repo.GetTotal(ctx, userID)
	if err != nil {
		return domain.LevelState{}, err
	}
	return s.cfg.LevelFromXP(total), nil
}

// ApplyDelta persists an XP change and reports whether it crossed a level
// boundary. The crossing check compares the persisted before/after totals,
// so concurrent writers cannot double-report a level-up for the same XP.
func (s *XPService) ApplyDelta(ctx context.Context, userID string, delta int) (domain.XPDelta, error) {
	previous, err := s.repo.GetTotal(ctx, userID)
	if err != nil {
		return domain.XPDelta{}, err
	}

	newTotal, err := s.repo.AddDelta(ctx, userID, delta)
	if err != nil {
		return domain.XPDelta{}, err
	}

	after := s.cfg.LevelFromXP(newTotal)
	return domain.XPDelta{
		NewTotal:     newTotal,
		CrossedLevel: after.Level > s.cfg.LevelFromXP(previous).Level,
		NewLevel:     after.Level,
	}, nil
}

// Reconcile replaces the stored total with an authoritative recount and
// returns the resulting level state.
func (s *XPService) Reconcile(ctx context.Context, userID string, authoritativeTotal int) (domain.LevelState, error) {
	if authoritativeTotal < 0 {
		authoritativeTotal = 0
	}
	if err := s.repo.SetTotal(ctx, userID, authoritativeTotal); err != nil {
		return domain.LevelState{}, err
	}
	return s.cfg.LevelFromXP(authoritativeTotal), nil
}
