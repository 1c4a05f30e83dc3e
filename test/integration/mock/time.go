package mock

import "time"

// Time is a settable clock that keeps ticking from the value it was set to.
type Time struct {
	currentStartTime time.Time
	updatedAt        time.Time
}

func NewTime() *Time {
	return &Time{
		currentStartTime: time.Now(),
		updatedAt:        time.Now(),
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

// SetDay moves the clock to midnight UTC of a YYYY-MM-DD day.
func (t *Time) SetDay(day string) error {
	parsed, err := time.Parse("2006-01-02", day)
	if err != nil {
		return err
	}
	t.SetCurrentTime(parsed)
	return nil
}

func (t *Time) Now() time.Time {
	elapsed := time.Since(t.updatedAt)
	return t.currentStartTime.Add(elapsed)
}
