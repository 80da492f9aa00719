package analysis

import "time"

// Clock abstracts time.Now() to allow deterministic testing of
// vintage substitution and drinking-status classification.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
