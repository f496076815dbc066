// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// TxManager runs a function inside a single storage transaction. Every
// multi-row mutation (materialization, end-date reconciliation, breakdown
// regeneration, cumulative recomputation) must go through it so a mid-
// operation failure cannot leave a partially applied series. Repository
// calls made with the context passed to fn join the same transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
