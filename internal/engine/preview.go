package engine

import "lifequest/internal/storage"

// PreviewExpDelta computes the provisional ledger change for an in-flight
// reward edit: the signed difference against the stored reward for a
// completed quest, otherwise the prospective reward itself. Pure; the
// ledger is never touched.
func PreviewExpDelta(q *storage.Quest, newExp int) int {
	if q != nil && q.Status == string(StatusCompleted) {
		return newExp - q.EXP
	}
	return newExp
}

// ProjectedLevel shows where the ledger would land if delta were applied.
// A projection only; nothing is mutated.
func ProjectedLevel(p *storage.Profile, delta int) LevelInfo {
	exp := p.EXP + delta
	if exp < 0 {
		exp = 0
	}
	return LevelProgress(exp)
}

// PreviewExp broadcasts a provisional EXP delta so progression displays can
// render a hypothetical level without committing anything.
func (s *Service) PreviewExp(delta int) {
	s.fanout.Notify(Event{Kind: EventExpPreview, ExpDelta: delta})
}

// ClearExpPreview cancels the hypothetical view.
func (s *Service) ClearExpPreview() {
	s.notify(EventClearExpPreview)
}
