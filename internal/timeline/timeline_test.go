package timeline

import (
	"math/rand"
	"testing"
	"time"
)

func testEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	e, err := New(rand.New(rand.NewSource(seed)), start, end, 0.85)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func TestNewValidation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	now := time.Now()

	if _, err := New(r, now, now, 0.85); err == nil {
		t.Error("New() with empty window: expected error")
	}
	if _, err := New(r, now, now.AddDate(0, -6, 0), 0.85); err == nil {
		t.Error("New() with inverted window: expected error")
	}
	if _, err := New(r, now.AddDate(0, -6, 0), now, 1.5); err == nil {
		t.Error("New() with bias > 1: expected error")
	}
}

func TestCreationTimeBounds(t *testing.T) {
	e := testEngine(t, 42)
	after := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	for i := 0; i < 2000; i++ {
		got := e.CreationTime(after)
		if got.Before(after) {
			t.Fatalf("CreationTime() = %s, before lower bound %s", got, after)
		}
		if got.After(e.Now()) {
			t.Fatalf("CreationTime() = %s, after window end %s", got, e.Now())
		}
	}
}

func TestCreationTimeStaysBeforeWindowEnd(t *testing.T) {
	e := testEngine(t, 42)

	for _, after := range []time.Time{
		e.start,
		e.end.AddDate(0, 0, -1),
		e.end.Add(-time.Hour),
		e.end.Add(-time.Minute),
	} {
		for i := 0; i < 1000; i++ {
			got := e.CreationTime(after)
			if got.Before(after) {
				t.Fatalf("CreationTime(%s) = %s, before lower bound", after, got)
			}
			if !got.Before(e.Now()) {
				t.Fatalf("CreationTime(%s) = %s, not before window end %s", after, got, e.Now())
			}
		}
	}
}

func TestCreationTimeBeforeBounds(t *testing.T) {
	e := testEngine(t, 42)
	after := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	before := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		got := e.CreationTimeBefore(after, before)
		if got.Before(after) || !got.Before(before) {
			t.Fatalf("CreationTimeBefore() = %s, outside [%s, %s)", got, after, before)
		}
	}

	// A ceiling past the window end is capped at the end.
	past := e.end.AddDate(0, 1, 0)
	for i := 0; i < 1000; i++ {
		if got := e.CreationTimeBefore(after, past); !got.Before(e.end) {
			t.Fatalf("CreationTimeBefore() = %s, not before window end", got)
		}
	}
}

func TestCompletionTimeBeforeBounds(t *testing.T) {
	e := testEngine(t, 42)
	created := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	ceil := time.Date(2025, 4, 20, 17, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		got := e.CompletionTimeBefore(created, ceil)
		if !got.After(created) || got.After(ceil) {
			t.Fatalf("CompletionTimeBefore() = %s, outside (%s, %s]", got, created, ceil)
		}
	}
}

func TestCreationTimeWeekdayBias(t *testing.T) {
	e := testEngine(t, 42)
	weekdays := 0
	const draws = 5000
	for i := 0; i < draws; i++ {
		if !isWeekend(e.CreationTime(e.start)) {
			weekdays++
		}
	}
	frac := float64(weekdays) / draws
	// 85% forced to weekdays plus the 5/7 of unforced draws that land
	// there anyway puts the floor well above 0.85.
	if frac < 0.85 {
		t.Errorf("weekday fraction = %.3f, want >= 0.85", frac)
	}
}

func TestCreationTimeRampsUpward(t *testing.T) {
	e := testEngine(t, 42)
	mid := e.start.Add(e.end.Sub(e.start) / 2)

	late := 0
	const draws = 5000
	for i := 0; i < draws; i++ {
		if e.CreationTime(e.start).After(mid) {
			late++
		}
	}
	// With a linear ramp, 3/4 of the mass lies in the second half.
	frac := float64(late) / draws
	if frac < 0.65 || frac > 0.85 {
		t.Errorf("second-half fraction = %.3f, want ~0.75", frac)
	}
}

func TestCompletionTimeOrdering(t *testing.T) {
	e := testEngine(t, 42)

	for i := 0; i < 2000; i++ {
		created := e.CreationTime(e.start)
		due := e.DueDate(created)
		completed := e.CompletionTime(created, due)
		if !completed.After(created) {
			t.Fatalf("CompletionTime() = %s, not after creation %s", completed, created)
		}
		if completed.After(e.Now()) {
			t.Fatalf("CompletionTime() = %s, after now %s", completed, e.Now())
		}
	}
}

func TestModifiedTimeBounds(t *testing.T) {
	e := testEngine(t, 7)
	created := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	ceil := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		got := e.ModifiedTime(created, ceil)
		if got.Before(created) || got.After(ceil) {
			t.Fatalf("ModifiedTime() = %s, outside [%s, %s]", got, created, ceil)
		}
	}

	if got := e.ModifiedTime(created, created); !got.Equal(created) {
		t.Errorf("ModifiedTime() with ceil == created = %s, want %s", got, created)
	}
}

func TestDueDateBands(t *testing.T) {
	e := testEngine(t, 42)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var none, overdue, week, month, quarter int
	const draws = 20000
	for i := 0; i < draws; i++ {
		due := e.DueDate(created)
		switch {
		case due == nil:
			none++
		case due.Before(truncateToDay(created)):
			overdue++
		case !due.After(created.AddDate(0, 0, 7)):
			week++
		case !due.After(created.AddDate(0, 0, 32)):
			// Weekend shifts can push a 30-day due date out two days.
			month++
		default:
			quarter++
		}
	}

	assertBand := func(name string, count int, want float64) {
		t.Helper()
		got := float64(count) / draws
		if got < want-0.03 || got > want+0.03 {
			t.Errorf("%s band = %.3f, want ~%.2f", name, got, want)
		}
	}
	assertBand("none", none, 0.10)
	assertBand("overdue", overdue, 0.05)
	assertBand("week", week, 0.25)
	assertBand("month", month, 0.40)
	assertBand("quarter", quarter, 0.20)
}

func TestDueDateExtendsPastWindowEnd(t *testing.T) {
	// Tasks created late in the window still draw from the full band
	// distribution; open deadlines legitimately land after the run end
	// and must not be clamped back inside the window.
	e := testEngine(t, 42)
	created := e.end.AddDate(0, 0, -1)

	maxOffset := time.Duration(0)
	for i := 0; i < 5000; i++ {
		due := e.DueDate(created)
		if due == nil {
			continue
		}
		if off := due.Sub(created); off > maxOffset {
			maxOffset = off
		}
	}
	if maxOffset < 31*24*time.Hour {
		t.Errorf("max due offset = %s, quarter band collapsed by window clamping", maxOffset)
	}
}

func TestDueDateOverdueStaysBeforeCreation(t *testing.T) {
	// The overdue band is an intentional exception to due >= created;
	// verify it is never silently clamped forward.
	e := testEngine(t, 99)
	created := time.Date(2025, 4, 10, 15, 0, 0, 0, time.UTC)

	sawOverdue := false
	for i := 0; i < 5000; i++ {
		due := e.DueDate(created)
		if due != nil && due.Before(truncateToDay(created)) {
			sawOverdue = true
			if created.Sub(*due) > 15*24*time.Hour {
				t.Fatalf("overdue due date %s more than 14 days before creation", due)
			}
		}
	}
	if !sawOverdue {
		t.Error("no overdue due dates in 5000 draws; band missing")
	}
}
