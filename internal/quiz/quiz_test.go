package quiz

import (
	"reflect"
	"testing"
)

// buildQuestion appends a question with the given option texts and correct
// marker positions.
func buildQuestion(m *Model, texts []string, correct []int) Question {
	q := m.AddQuestion()
	for range texts {
		m.AddOption(q.ID)
	}
	q, _ = m.QuestionByID(q.ID)
	for i, text := range texts {
		m.UpdateOptionText(q.ID, q.Options[i].ID, text)
	}
	for _, idx := range correct {
		m.ToggleCorrect(q.ID, idx)
	}
	q, _ = m.QuestionByID(q.ID)
	return q
}

func optionTexts(q Question) []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Text
	}
	return out
}

func TestAddQuestionStartsEmpty(t *testing.T) {
	m := NewModel()
	q := m.AddQuestion()
	if q.Text != "" || len(q.Options) != 0 || len(q.CorrectIndexes) != 0 {
		t.Errorf("new question not empty: %+v", q)
	}
	if q.ID == "" {
		t.Errorf("expected generated id")
	}
}

func TestUpdateQuestionReplacesWholeRecord(t *testing.T) {
	m := NewModel()
	q := buildQuestion(m, []string{"a", "b"}, []int{0})

	q.Text = "Кой е най-големият океан?"
	q.CorrectIndexes = []int{1}
	if !m.UpdateQuestion(q) {
		t.Fatalf("UpdateQuestion rejected known id")
	}
	got, _ := m.QuestionByID(q.ID)
	if got.Text != q.Text || !reflect.DeepEqual(got.CorrectIndexes, []int{1}) {
		t.Errorf("record not replaced: %+v", got)
	}

	if m.UpdateQuestion(Question{ID: "missing"}) {
		t.Errorf("UpdateQuestion accepted unknown id")
	}
}

func TestDeleteOptionReindexesCorrectMarkers(t *testing.T) {
	m := NewModel()
	q := buildQuestion(m, []string{"A", "B", "C", "D"}, []int{1, 3})

	m.DeleteOption(q.ID, q.Options[1].ID)

	got, _ := m.QuestionByID(q.ID)
	if want := []string{"A", "C", "D"}; !reflect.DeepEqual(optionTexts(got), want) {
		t.Errorf("options = %v, want %v", optionTexts(got), want)
	}
	if want := []int{2}; !reflect.DeepEqual(got.CorrectIndexes, want) {
		t.Errorf("correct indexes = %v, want %v", got.CorrectIndexes, want)
	}
}

func TestDeleteOptionLowerIndexesUnaffected(t *testing.T) {
	m := NewModel()
	q := buildQuestion(m, []string{"A", "B", "C"}, []int{0, 2})

	m.DeleteOption(q.ID, q.Options[2].ID)

	got, _ := m.QuestionByID(q.ID)
	if want := []int{0}; !reflect.DeepEqual(got.CorrectIndexes, want) {
		t.Errorf("correct indexes = %v, want %v", got.CorrectIndexes, want)
	}
}

func TestMoveQuestionBoundsAreNoOps(t *testing.T) {
	m := NewModel()
	a := m.AddQuestion()
	b := m.AddQuestion()
	c := m.AddQuestion()

	m.MoveQuestion(a.ID, MoveUp)
	m.MoveQuestion(c.ID, MoveDown)
	if got := m.Questions(); got[0].ID != a.ID || got[2].ID != c.ID {
		t.Errorf("out-of-bounds move changed order")
	}

	m.MoveQuestion(b.ID, MoveUp)
	got := m.Questions()
	if got[0].ID != b.ID || got[1].ID != a.ID || got[2].ID != c.ID {
		t.Errorf("swap wrong: %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestScenarioDOptionCap(t *testing.T) {
	m := NewModel()
	q := m.AddQuestion()

	for i := 0; i < MaxOptions; i++ {
		if !m.AddOption(q.ID) {
			t.Fatalf("AddOption %d rejected below the cap", i+1)
		}
	}
	if m.AddOption(q.ID) {
		t.Errorf("AddOption accepted beyond the cap")
	}
	got, _ := m.QuestionByID(q.ID)
	if len(got.Options) != MaxOptions {
		t.Errorf("option count = %d, want %d", len(got.Options), MaxOptions)
	}
}

func TestScenarioCPreviewClassification(t *testing.T) {
	m := NewModel()
	q := buildQuestion(m, []string{"Paris", "London"}, []int{0})
	m.SetMode(ModePreview)

	m.ToggleChosen(q.ID, 0)
	m.Reveal(q.ID)

	if got := m.Classify(q.ID, 0); got != VerdictCorrectChosen {
		t.Errorf("option 0 verdict = %v, want VerdictCorrectChosen", got)
	}
	if got := m.Classify(q.ID, 1); got != VerdictNeutral {
		t.Errorf("option 1 verdict = %v, want VerdictNeutral", got)
	}

	// frozen after reveal
	m.ToggleChosen(q.ID, 1)
	if got := m.Chosen(q.ID); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("chosen = %v after reveal, want [0]", got)
	}
}

func TestClassifyMissedAndWrong(t *testing.T) {
	m := NewModel()
	q := buildQuestion(m, []string{"a", "b", "c"}, []int{0, 1})
	m.SetMode(ModePreview)

	m.ToggleChosen(q.ID, 1)
	m.ToggleChosen(q.ID, 2)
	m.Reveal(q.ID)

	if got := m.Classify(q.ID, 0); got != VerdictMissed {
		t.Errorf("unchosen correct option = %v, want VerdictMissed", got)
	}
	if got := m.Classify(q.ID, 1); got != VerdictCorrectChosen {
		t.Errorf("chosen correct option = %v, want VerdictCorrectChosen", got)
	}
	if got := m.Classify(q.ID, 2); got != VerdictWrongChoice {
		t.Errorf("chosen wrong option = %v, want VerdictWrongChoice", got)
	}
}

func TestClassifyNeutralBeforeReveal(t *testing.T) {
	m := NewModel()
	q := buildQuestion(m, []string{"a"}, []int{0})
	m.SetMode(ModePreview)
	m.ToggleChosen(q.ID, 0)
	if got := m.Classify(q.ID, 0); got != VerdictNeutral {
		t.Errorf("verdict before reveal = %v, want VerdictNeutral", got)
	}
}

func TestModeRoundTripResetsSessions(t *testing.T) {
	m := NewModel()
	a := buildQuestion(m, []string{"x", "y"}, []int{0})
	b := buildQuestion(m, []string{"p", "q"}, []int{1})

	m.SetMode(ModePreview)
	m.ToggleChosen(a.ID, 1)
	m.Reveal(a.ID)
	m.ToggleChosen(b.ID, 0)

	m.SetMode(ModeEdit)
	m.SetMode(ModePreview)

	for _, q := range []Question{a, b} {
		if m.Revealed(q.ID) {
			t.Errorf("question %s still revealed after round-trip", q.ID)
		}
		if got := m.Chosen(q.ID); len(got) != 0 {
			t.Errorf("question %s chosen = %v after round-trip, want empty", q.ID, got)
		}
	}
}

func TestResetPreviewAndResetAll(t *testing.T) {
	m := NewModel()
	a := buildQuestion(m, []string{"x"}, []int{0})
	b := buildQuestion(m, []string{"y"}, []int{0})
	m.SetMode(ModePreview)

	m.ToggleChosen(a.ID, 0)
	m.Reveal(a.ID)
	m.ResetPreview(a.ID)
	if m.Revealed(a.ID) || len(m.Chosen(a.ID)) != 0 {
		t.Errorf("ResetPreview did not clear the session")
	}

	m.ToggleChosen(a.ID, 0)
	m.ToggleChosen(b.ID, 0)
	m.RevealAll()
	if !m.Revealed(a.ID) || !m.Revealed(b.ID) {
		t.Errorf("RevealAll missed a question")
	}
	m.ResetAll()
	if m.Revealed(a.ID) || m.Revealed(b.ID) {
		t.Errorf("ResetAll missed a question")
	}
}

func TestStatisticsRecomputeAfterToggleCorrect(t *testing.T) {
	m := NewModel()
	a := buildQuestion(m, []string{"x", "y"}, nil)
	buildQuestion(m, []string{"p", "q", "r"}, []int{2})

	stats := m.Statistics()
	if stats.QuestionCount != 2 || stats.TotalOptionCount != 5 {
		t.Errorf("counts = %d/%d, want 2/5", stats.QuestionCount, stats.TotalOptionCount)
	}
	if stats.QuestionsWithoutCorrect != 1 {
		t.Errorf("questions without correct = %d, want 1", stats.QuestionsWithoutCorrect)
	}

	m.ToggleCorrect(a.ID, 0)
	if got := m.Statistics().QuestionsWithoutCorrect; got != 0 {
		t.Errorf("questions without correct = %d after toggle, want 0", got)
	}

	m.ToggleCorrect(a.ID, 0)
	if got := m.Statistics().QuestionsWithoutCorrect; got != 1 {
		t.Errorf("questions without correct = %d after second toggle, want 1", got)
	}
}

func TestDeleteQuestion(t *testing.T) {
	m := NewModel()
	a := m.AddQuestion()
	b := m.AddQuestion()

	m.DeleteQuestion(a.ID)
	if got := m.Questions(); len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("unexpected questions after delete: %+v", got)
	}
	m.DeleteQuestion(a.ID) // safe no-op
	if len(m.Questions()) != 1 {
		t.Errorf("second delete changed the quiz")
	}
}

func TestTextClamps(t *testing.T) {
	m := NewModel()
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}

	m.SetTitle(string(long))
	if got := len([]rune(m.Title())); got != MaxTitleLen {
		t.Errorf("title length = %d, want %d", got, MaxTitleLen)
	}

	q := m.AddQuestion()
	q.Text = string(long)
	m.UpdateQuestion(q)
	got, _ := m.QuestionByID(q.ID)
	if n := len([]rune(got.Text)); n != MaxQuestionLen {
		t.Errorf("question length = %d, want %d", n, MaxQuestionLen)
	}

	m.AddOption(q.ID)
	got, _ = m.QuestionByID(q.ID)
	m.UpdateOptionText(q.ID, got.Options[0].ID, string(long))
	got, _ = m.QuestionByID(q.ID)
	if n := len([]rune(got.Options[0].Text)); n != MaxOptionLen {
		t.Errorf("option length = %d, want %d", n, MaxOptionLen)
	}
}
