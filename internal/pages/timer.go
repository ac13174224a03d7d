package pages

import (
	"strconv"
	"time"

	"studydesk/internal/domain"
)

// TimeLayout renders wall-clock times as "2024-01-01 09:05:00 PM".
const TimeLayout = "2006-01-02 03:04:05 PM"

// InvalidTimeMessage replaces both timer fields when the minutes input is rejected.
const InvalidTimeMessage = "Please enter a valid input of time."

// ParseMinutes accepts only a non-empty run of ASCII digits whose value is
// greater than zero. Non-digit input is rejected before any conversion.
func ParseMinutes(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	// time.Duration overflows past roughly 292 years of minutes
	if int64(n) > int64(maxDuration/time.Minute) {
		return 0, false
	}
	return n, true
}

const maxDuration = time.Duration(1<<63 - 1)

// applyTimer writes the start/end pair for minutes into st, or the invalid
// message into both fields. It reports whether the input was accepted.
func applyTimer(st *domain.State, minutes string, now time.Time) bool {
	n, ok := ParseMinutes(minutes)
	if !ok {
		st.StartingTime = InvalidTimeMessage
		st.EndingTime = InvalidTimeMessage
		st.TimerEnd = time.Time{}
		return false
	}

	end := now.Add(time.Duration(n) * time.Minute)
	st.StartingTime = now.Format(TimeLayout)
	st.EndingTime = end.Format(TimeLayout)
	st.TimerEnd = end
	return true
}
