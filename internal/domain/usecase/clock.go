package usecase

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Clock provides the current time. Controllers take it as a dependency so the
// due-date comparisons stay deterministic under test.
type Clock interface {
	Now() time.Time
}

// SweepGateRepository remembers the last calendar month the cycle reset sweep
// ran for a user, so the sweep executes at most once per month per user.
type SweepGateRepository interface {
	// Acquire reports whether the sweep may run for the given month
	// (formatted YYYY-MM), recording the month when it may.
	Acquire(userId primitive.ObjectID, month string) (bool, error)
}
