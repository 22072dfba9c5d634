package kb

import "context"

// Store is the read-side contract the resolver needs from the condition
// database. Implementations must distinguish "not found" (errors.ErrNotFound)
// from an unreachable store, which propagates as a distinguishable error to
// the caller; the resolver never collapses the two.
type Store interface {
	// GetCondition returns the condition for canonicalID, or
	// errors.ErrNotFound.
	GetCondition(ctx context.Context, canonicalID string) (Condition, error)

	// AllConditions returns every condition in the knowledge base.
	AllConditions(ctx context.Context) ([]Condition, error)
}
