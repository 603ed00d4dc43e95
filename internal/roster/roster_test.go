package roster

import (
	"math"
	"testing"
)

func TestAddStudentTrimsAndAppends(t *testing.T) {
	st := NewStore()
	s, ok := st.AddStudent("  Иван Петров  ", " 11А ")
	if !ok {
		t.Fatalf("AddStudent rejected valid input")
	}
	if s.Name != "Иван Петров" || s.Grade != "11А" {
		t.Errorf("fields not trimmed: %q %q", s.Name, s.Grade)
	}
	if s.ID == "" {
		t.Errorf("expected generated id")
	}
	if len(s.Scores) != 0 {
		t.Errorf("new student should have no scores, got %v", s.Scores)
	}
	if st.Len() != 1 {
		t.Errorf("roster size = %d, want 1", st.Len())
	}
}

func TestAddStudentRejectsEmptyFields(t *testing.T) {
	st := NewStore()
	cases := []struct{ name, grade string }{
		{"", "11А"},
		{"   ", "11А"},
		{"Иван", ""},
		{"Иван", "  "},
		{"", ""},
	}
	for _, c := range cases {
		if _, ok := st.AddStudent(c.name, c.grade); ok {
			t.Errorf("AddStudent(%q, %q) accepted, want rejection", c.name, c.grade)
		}
	}
	if st.Len() != 0 {
		t.Errorf("roster size = %d after rejected adds, want 0", st.Len())
	}
}

func TestAddStudentClampsLongFields(t *testing.T) {
	st := NewStore()
	long := make([]rune, 80)
	for i := range long {
		long[i] = 'я'
	}
	s, ok := st.AddStudent(string(long), "11А")
	if !ok {
		t.Fatalf("AddStudent rejected long name")
	}
	if got := len([]rune(s.Name)); got != MaxNameLen {
		t.Errorf("name length = %d, want %d", got, MaxNameLen)
	}
}

func TestScenarioAGradesAndAverages(t *testing.T) {
	st := NewStore()
	s, _ := st.AddStudent("Иван Петров", "11А")

	if !st.RecordGrade(s.ID, 5.5) || !st.RecordGrade(s.ID, 6.0) {
		t.Fatalf("valid grades rejected")
	}

	got := st.Students()[0]
	if avg := got.Average(); math.Abs(avg-5.75) > 1e-9 {
		t.Errorf("average = %v, want 5.75", avg)
	}
	stats := st.ClassStatistics()
	if !stats.Defined {
		t.Fatalf("statistics undefined with recorded scores")
	}
	if stats.Max != 6.0 || stats.Min != 5.5 {
		t.Errorf("max/min = %v/%v, want 6.0/5.5", stats.Max, stats.Min)
	}
	if stats.Count != 1 {
		t.Errorf("count = %d, want 1", stats.Count)
	}
}

func TestScenarioBOutOfRangeGradesRejected(t *testing.T) {
	st := NewStore()
	s, _ := st.AddStudent("Мария", "10Б")

	for _, bad := range []float64{1.9, 6.1, 0, -3, math.NaN()} {
		if st.RecordGrade(s.ID, bad) {
			t.Errorf("RecordGrade(%v) accepted, want rejection", bad)
		}
	}
	if got := st.Students()[0].Scores; len(got) != 0 {
		t.Errorf("scores = %v after rejected grades, want empty", got)
	}
}

func TestRecordGradeUnknownIDIsNoOp(t *testing.T) {
	st := NewStore()
	st.AddStudent("Иван", "11А")
	if st.RecordGrade("missing", 5.0) {
		t.Errorf("RecordGrade on unknown id accepted")
	}
}

func TestRecordGradeBoundaryValues(t *testing.T) {
	st := NewStore()
	s, _ := st.AddStudent("Иван", "11А")
	if !st.RecordGrade(s.ID, 2.0) {
		t.Errorf("RecordGrade(2.0) rejected, boundaries are inclusive")
	}
	if !st.RecordGrade(s.ID, 6.0) {
		t.Errorf("RecordGrade(6.0) rejected, boundaries are inclusive")
	}
}

func TestAverageEmptyScoresIsZero(t *testing.T) {
	if avg := (Student{}).Average(); avg != 0 {
		t.Errorf("empty average = %v, want 0", avg)
	}
}

func TestDeleteStudent(t *testing.T) {
	st := NewStore()
	a, _ := st.AddStudent("Иван", "11А")
	b, _ := st.AddStudent("Мария", "10Б")

	st.DeleteStudent(a.ID)
	if st.Len() != 1 || st.Students()[0].ID != b.ID {
		t.Errorf("unexpected roster after delete: %+v", st.Students())
	}

	// deleting twice stays safe
	st.DeleteStudent(a.ID)
	if st.Len() != 1 {
		t.Errorf("second delete changed the roster")
	}
}

func TestDerivedViewFiltersCaseInsensitive(t *testing.T) {
	st := NewStore()
	st.AddStudent("Иван Петров", "11А")
	st.AddStudent("Мария Иванова", "10Б")
	st.AddStudent("Георги Димитров", "11А")

	st.SetSearchQuery("  иван  ")
	view := st.DerivedView()
	if len(view) != 2 {
		t.Fatalf("filtered view size = %d, want 2", len(view))
	}
	if view[0].Name != "Иван Петров" || view[1].Name != "Мария Иванова" {
		t.Errorf("filter changed relative order: %+v", view)
	}
	if st.Len() != 3 {
		t.Errorf("filter mutated canonical storage")
	}
}

func TestSortByAverageIsStableAndDescending(t *testing.T) {
	st := NewStore()
	a, _ := st.AddStudent("Първи", "11А")
	b, _ := st.AddStudent("Втори", "11А")
	c, _ := st.AddStudent("Трети", "11А")

	st.RecordGrade(a.ID, 4.0)
	st.RecordGrade(b.ID, 6.0)
	st.RecordGrade(c.ID, 4.0) // ties with a

	st.SetSortByAverage(true)
	view := st.DerivedView()
	want := []string{b.ID, a.ID, c.ID}
	for i, id := range want {
		if view[i].ID != id {
			t.Fatalf("view order = %v, want %v", ids(view), want)
		}
	}

	// canonical order untouched
	canonical := st.Students()
	if canonical[0].ID != a.ID || canonical[1].ID != b.ID || canonical[2].ID != c.ID {
		t.Errorf("sorting mutated canonical order")
	}
}

func TestClassStatisticsUndefinedWithoutScores(t *testing.T) {
	st := NewStore()
	stats := st.ClassStatistics()
	if stats.Defined {
		t.Errorf("empty roster statistics marked defined")
	}

	st.AddStudent("Иван", "11А")
	stats = st.ClassStatistics()
	if stats.Defined {
		t.Errorf("statistics defined with zero recorded scores")
	}
	if stats.Count != 1 {
		t.Errorf("count = %d, want 1", stats.Count)
	}
}

func TestClassStatisticsUnionOfAllScores(t *testing.T) {
	st := NewStore()
	a, _ := st.AddStudent("Иван", "11А")
	b, _ := st.AddStudent("Мария", "10Б")
	st.RecordGrade(a.ID, 2.0)
	st.RecordGrade(a.ID, 4.0)
	st.RecordGrade(b.ID, 6.0)

	stats := st.ClassStatistics()
	if math.Abs(stats.Average-4.0) > 1e-9 {
		t.Errorf("union average = %v, want 4.0", stats.Average)
	}
	if stats.Min != 2.0 || stats.Max != 6.0 {
		t.Errorf("min/max = %v/%v, want 2.0/6.0", stats.Min, stats.Max)
	}
}

func ids(students []Student) []string {
	out := make([]string, len(students))
	for i, s := range students {
		out[i] = s.ID
	}
	return out
}
