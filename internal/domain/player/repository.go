package player

import "context"

// Source loads the canonical roster. Implementations fetch fresh data on every
// call and never cache.
type Source interface {
	ListPlayers(ctx context.Context) (Roster, error)
}
