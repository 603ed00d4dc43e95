// Package roster holds the classroom gradebook state machine: an ordered
// collection of students with per-student grade histories, a filtered and
// optionally sorted derived view, and class-wide statistics.
//
// All mutations are immutable updates. Every command builds a fresh slice
// and replaces the old one, so a caller that captured a previous view never
// observes it changing underneath.
package roster

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Bounds for user-entered fields. Longer input is truncated, not rejected.
const (
	MaxNameLen  = 50
	MaxGradeLen = 10
)

// Score domain accepted by RecordGrade, inclusive on both ends.
const (
	MinScore = 2.0
	MaxScore = 6.0
)

// Student is a roster entry. Scores is append-only; individual past scores
// are never edited or removed.
type Student struct {
	ID     string
	Name   string
	Grade  string
	Scores []float64
}

// Average returns the arithmetic mean of the student's scores, or 0 when
// the student has none.
func (s Student) Average() float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Scores {
		sum += v
	}
	return sum / float64(len(s.Scores))
}

// Stats aggregates over the union of every student's scores. Defined is
// false when no student has any score; Count is always the roster size.
type Stats struct {
	Count   int
	Average float64
	Max     float64
	Min     float64
	Defined bool
}

// Store owns the canonical student list plus the two view toggles.
// Canonical order is insertion order and is never mutated by sorting or
// filtering.
type Store struct {
	students      []Student
	sortByAverage bool
	searchQuery   string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// AddStudent appends a student with no scores. Both fields are trimmed;
// if either is empty after trimming nothing happens and ok is false.
func (st *Store) AddStudent(name, grade string) (Student, bool) {
	name = clamp(strings.TrimSpace(name), MaxNameLen)
	grade = clamp(strings.TrimSpace(grade), MaxGradeLen)
	if name == "" || grade == "" {
		return Student{}, false
	}
	s := Student{ID: uuid.NewString(), Name: name, Grade: grade}
	next := make([]Student, len(st.students), len(st.students)+1)
	copy(next, st.students)
	st.students = append(next, s)
	return s, true
}

// RecordGrade appends a score to the student's history. Scores outside
// [MinScore, MaxScore] and NaN are rejected; an unknown id is a no-op.
func (st *Store) RecordGrade(id string, score float64) bool {
	if score != score || score < MinScore || score > MaxScore {
		return false
	}
	next := make([]Student, len(st.students))
	copy(next, st.students)
	for i, s := range next {
		if s.ID != id {
			continue
		}
		scores := make([]float64, len(s.Scores), len(s.Scores)+1)
		copy(scores, s.Scores)
		next[i].Scores = append(scores, score)
		st.students = next
		return true
	}
	return false
}

// DeleteStudent removes the student with the given id, preserving the
// order of everyone else. Unknown ids are a no-op.
func (st *Store) DeleteStudent(id string) {
	next := make([]Student, 0, len(st.students))
	for _, s := range st.students {
		if s.ID != id {
			next = append(next, s)
		}
	}
	st.students = next
}

// SetSortByAverage toggles the descending-average sort on the derived view.
func (st *Store) SetSortByAverage(on bool) {
	st.sortByAverage = on
}

// SortByAverage reports the current sort toggle.
func (st *Store) SortByAverage() bool {
	return st.sortByAverage
}

// SetSearchQuery sets the name filter applied to the derived view.
func (st *Store) SetSearchQuery(q string) {
	st.searchQuery = q
}

// SearchQuery returns the current filter text as entered.
func (st *Store) SearchQuery() string {
	return st.searchQuery
}

// Len returns the canonical roster size, ignoring the filter.
func (st *Store) Len() int {
	return len(st.students)
}

// Students returns the canonical roster in insertion order.
func (st *Store) Students() []Student {
	out := make([]Student, len(st.students))
	copy(out, st.students)
	return out
}

// DerivedView applies the search filter, then the stable descending-average
// sort when enabled. Students with equal averages keep their relative
// order.
func (st *Store) DerivedView() []Student {
	query := strings.ToLower(strings.TrimSpace(st.searchQuery))
	view := make([]Student, 0, len(st.students))
	for _, s := range st.students {
		if query == "" || strings.Contains(strings.ToLower(s.Name), query) {
			view = append(view, s)
		}
	}
	if st.sortByAverage {
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Average() > view[j].Average()
		})
	}
	return view
}

// ClassStatistics computes min, max and average over every recorded score
// of every student. When no scores exist anywhere, Defined is false and
// the numeric fields are zero.
func (st *Store) ClassStatistics() Stats {
	stats := Stats{Count: len(st.students)}
	sum, n := 0.0, 0
	for _, s := range st.students {
		for _, v := range s.Scores {
			if n == 0 {
				stats.Max, stats.Min = v, v
			} else {
				if v > stats.Max {
					stats.Max = v
				}
				if v < stats.Min {
					stats.Min = v
				}
			}
			sum += v
			n++
		}
	}
	if n > 0 {
		stats.Average = sum / float64(n)
		stats.Defined = true
	}
	return stats
}

func clamp(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
