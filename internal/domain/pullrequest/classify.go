package pullrequest

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type StatusCategory int

const (
	StatusUnknown StatusCategory = iota
	StatusOpen
	StatusClosed
	StatusMerged
)

func (c StatusCategory) String() string {
	switch c {
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	case StatusMerged:
		return "merged"
	default:
		return "unknown"
	}
}

type AgeCategory int

const (
	AgeFresh AgeCategory = iota
	AgeAging
	AgeStale
)

func (c AgeCategory) String() string {
	switch c {
	case AgeAging:
		return "aging"
	case AgeStale:
		return "stale"
	default:
		return "fresh"
	}
}

const (
	agingAfterDays = 2
	staleAfterDays = 5
)

var now = time.Now

func ClassifyStatus(s State) StatusCategory {
	switch strings.ToLower(string(s)) {
	case "open":
		return StatusOpen
	case "closed":
		return StatusClosed
	case "merged":
		return StatusMerged
	}

	return StatusUnknown
}

// ClassifyAge reads the wall clock on every call, so the result for the same
// timestamp drifts towards stale as time passes.
func ClassifyAge(createdAt string) AgeCategory {
	return ClassifyAgeAt(createdAt, now())
}

// ParseCreatedAt accepts RFC 3339 plus the zoneless ISO-8601 forms. A bare
// date is UTC midnight, a date-time without offset is wall time in loc.
func ParseCreatedAt(createdAt string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", createdAt); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, createdAt, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("unsupported timestamp %q", createdAt)
}

func ClassifyAgeAt(createdAt string, at time.Time) AgeCategory {
	created, err := ParseCreatedAt(createdAt, at.Location())
	if err != nil {
		return AgeFresh
	}

	days := ElapsedDays(created, at)
	switch {
	case days > staleAfterDays:
		return AgeStale
	case days > agingAfterDays:
		return AgeAging
	default:
		return AgeFresh
	}
}

// ElapsedDays is the floor of the millisecond difference divided by one day.
func ElapsedDays(from, to time.Time) int {
	ms := to.Sub(from).Milliseconds()
	return int(math.Floor(float64(ms) / float64((24 * time.Hour).Milliseconds())))
}
