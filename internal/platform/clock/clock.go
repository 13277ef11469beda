package clock

import "time"

// Clock abstracts the current time so session transitions stay
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall-clock time; session timestamps are
// shown to the user in their own zone and stay offset-aware on disk.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
