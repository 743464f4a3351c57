// Package timeline generates every timestamp in a run. It guarantees the
// ordering invariants (creation before modification before completion,
// bounds within the configured window) without global lookahead: each call
// takes an explicit lower bound and never returns a time before it.
package timeline

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"worksim.dev/worksim/internal/stats"
)

const (
	// Log-normal cycle time: ln(days) ~ N(1.5, 0.5), mean ~5 days.
	cycleMeanLog = 1.5
	cycleStdLog  = 0.5

	businessHoursBias = 0.70

	// Due-date bands. The overdue band intentionally produces dates before
	// creation; it models tasks entered late against an existing deadline
	// and is an allowed exception to due >= created, not a bug.
	dueNoneBand    = 0.10
	dueOverdueBand = 0.05
	dueWeekBand    = 0.25
	dueMonthBand   = 0.40
)

// Engine produces timestamps within [start, end]. end doubles as "now"
// for the run: no generated time ever exceeds it.
type Engine struct {
	r           *rand.Rand
	start       time.Time
	end         time.Time
	weekdayBias float64
}

func New(r *rand.Rand, start, end time.Time, weekdayBias float64) (*Engine, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("timeline: window start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	if weekdayBias < 0 || weekdayBias > 1 {
		return nil, fmt.Errorf("timeline: weekday bias %g outside [0, 1]", weekdayBias)
	}
	return &Engine{r: r, start: start, end: end, weekdayBias: weekdayBias}, nil
}

// Start returns the beginning of the window.
func (e *Engine) Start() time.Time {
	return e.start
}

// Now returns the end of the window, the run's notion of the present.
func (e *Engine) Now() time.Time {
	return e.end
}

// CreationTime returns a timestamp in [after, end). Keeping creation
// strictly before the window end leaves room for the modification and
// completion times that follow it. Density ramps up linearly across the
// window to mimic organizational growth rather than uniform scatter.
// Weekdays are preferred at the configured bias and 70% of times fall in
// business hours (9-17).
func (e *Engine) CreationTime(after time.Time) time.Time {
	lo := e.start
	if after.After(lo) {
		lo = after
	}
	if !lo.Before(e.end) {
		return e.end
	}

	days := int(e.end.Sub(lo).Hours() / 24)
	// sqrt of a uniform draw gives linearly increasing density.
	offset := int(math.Sqrt(e.r.Float64()) * float64(days+1))
	if offset > days {
		offset = days
	}
	day := lo.AddDate(0, 0, offset)

	if stats.Bernoulli(e.r, e.weekdayBias) {
		day = e.shiftToWeekday(day)
	}

	var hour int
	if stats.Bernoulli(e.r, businessHoursBias) {
		hour = 9 + e.r.Intn(9)
	} else {
		hour = e.r.Intn(24)
	}
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, e.r.Intn(60), e.r.Intn(60), 0, day.Location())

	// Hour/minute substitution can step outside the bounds on the edge days.
	if t.Before(lo) {
		t = lo.Add(time.Duration(1+e.r.Intn(120)) * time.Minute)
	}
	if !t.Before(e.end) {
		t = lo.Add(time.Duration(e.r.Int63n(int64(e.end.Sub(lo)))))
	}
	return t
}

// CreationTimeBefore returns a timestamp in [after, before), for events
// that must precede a known later event such as a parent task's
// completion. The upper bound is capped at the window end.
func (e *Engine) CreationTimeBefore(after, before time.Time) time.Time {
	hi := before
	if hi.After(e.end) {
		hi = e.end
	}
	if !after.Before(hi) {
		return after
	}
	return after.Add(time.Duration(e.r.Int63n(int64(hi.Sub(after)))))
}

// CompletionTime returns when a task created at the given time finished.
// Cycle time is log-normal (mean ~5 days). When a due date exists, 80% of
// completions land shortly before it and the rest run 1-3 days late. The
// result always lies in (created, end].
func (e *Engine) CompletionTime(created time.Time, due *time.Time) time.Time {
	days := stats.LogNormalDays(e.r, cycleMeanLog, cycleStdLog, 1)
	completed := created.AddDate(0, 0, days)

	if due != nil && completed.After(*due) {
		if stats.Bernoulli(e.r, 0.80) {
			completed = due.Add(-time.Duration(1+e.r.Intn(24)) * time.Hour)
		} else {
			completed = due.AddDate(0, 0, 1+e.r.Intn(3))
		}
	}

	if !completed.After(created) {
		completed = created.Add(time.Duration(1+e.r.Intn(24)) * time.Hour)
	}
	if completed.After(e.end) {
		// Redraw uniformly inside the remaining room so completion never
		// postdates the run.
		room := e.end.Sub(created)
		if room <= 0 {
			return e.end
		}
		completed = created.Add(time.Duration(e.r.Int63n(int64(room))) + 1)
	}
	return completed
}

// CompletionTimeBefore returns a timestamp in (created, ceil], for
// completions that must not postdate a known later event. The ceiling is
// capped at the window end; callers must pass created strictly before it.
func (e *Engine) CompletionTimeBefore(created, ceil time.Time) time.Time {
	if ceil.After(e.end) {
		ceil = e.end
	}
	room := ceil.Sub(created)
	if room <= 0 {
		return ceil
	}
	return created.Add(time.Duration(e.r.Int63n(int64(room))) + 1)
}

// ModifiedTime returns a timestamp in [created, ceil].
func (e *Engine) ModifiedTime(created, ceil time.Time) time.Time {
	if !ceil.After(created) {
		return created
	}
	return created.Add(time.Duration(e.r.Int63n(int64(ceil.Sub(created)) + 1)))
}

// DueDate draws from the banded distribution: 10% none, 5% overdue (before
// creation, the explicit exception band), 25% within a week, 40% within a
// month, 20% one to three months out. Non-overdue dates avoid weekends at
// the weekday bias. The result is truncated to midnight.
func (e *Engine) DueDate(created time.Time) *time.Time {
	u := e.r.Float64()

	var dayOffset int
	switch {
	case u < dueNoneBand:
		return nil
	case u < dueNoneBand+dueOverdueBand:
		dayOffset = -(1 + e.r.Intn(14))
	case u < dueNoneBand+dueOverdueBand+dueWeekBand:
		dayOffset = 1 + e.r.Intn(7)
	case u < dueNoneBand+dueOverdueBand+dueWeekBand+dueMonthBand:
		dayOffset = 8 + e.r.Intn(23)
	default:
		dayOffset = 31 + e.r.Intn(60)
	}

	due := truncateToDay(created.AddDate(0, 0, dayOffset))
	if dayOffset > 0 && stats.Bernoulli(e.r, e.weekdayBias) {
		// Due dates may extend past the window end (open deadlines on
		// incomplete tasks), so only roll forward off weekends; the
		// window clamp applies to creation times alone.
		due = nextWeekday(due)
	}
	return &due
}

func (e *Engine) shiftToWeekday(day time.Time) time.Time {
	day = nextWeekday(day)
	// Rolling forward can overshoot the window; back up to Friday instead.
	for day.After(e.end) || isWeekend(day) {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

func nextWeekday(day time.Time) time.Time {
	for isWeekend(day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
