// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts the current time so date-driven logic (recurrence
// reconciliation, projections, position tracking) is testable.
type Clock interface {
	Now() time.Time
}
