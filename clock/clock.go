package clock

//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks

import "time"

// Clock abstracts the current time so the ledger and aggregator can be
// tested at fixed instants.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns a Clock backed by time.Now.
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}
