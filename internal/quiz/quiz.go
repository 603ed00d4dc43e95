// Package quiz holds the quiz builder state machine: an editable ordered
// list of multiple-choice questions, an edit/preview mode toggle, and
// ephemeral per-question self-check sessions that exist only inside a
// single preview visit.
//
// Correct answers are tracked by option position. Deleting an option
// re-indexes the marker set atomically with the removal so positions and
// options never disagree.
package quiz

import (
	"strings"

	"github.com/google/uuid"
)

// Bounds for user-entered text. Longer input is truncated, not rejected.
const (
	MaxTitleLen    = 120
	MaxQuestionLen = 200
	MaxOptionLen   = 150
)

// MaxOptions is the hard cap on answers per question.
const MaxOptions = 6

// Mode selects between the mutation UI and the read-only self-check UI.
type Mode int

const (
	ModeEdit Mode = iota
	ModePreview
)

// Direction of an adjacent question swap.
type Direction int

const (
	MoveUp Direction = iota
	MoveDown
)

// Verdict classifies one option of a revealed self-check.
type Verdict int

const (
	// VerdictNeutral marks an option that is neither correct nor chosen.
	VerdictNeutral Verdict = iota
	// VerdictCorrectChosen marks a correct option the user selected.
	VerdictCorrectChosen
	// VerdictMissed marks a correct option the user did not select.
	VerdictMissed
	// VerdictWrongChoice marks an incorrect option the user selected.
	VerdictWrongChoice
)

// Option is one answer of a question. Blank text is allowed and rendered
// as a placeholder in preview.
type Option struct {
	ID   string
	Text string
}

// Question is one quiz entry. CorrectIndexes holds zero-based positions
// into Options; it may be empty, which Statistics flags as a warning.
type Question struct {
	ID             string
	Text           string
	Options        []Option
	CorrectIndexes []int
}

// session is the ephemeral per-question self-check state. It never
// survives a mode transition.
type session struct {
	chosen   map[int]bool
	revealed bool
}

// Stats summarizes the quiz for the editor footer.
type Stats struct {
	QuestionCount           int
	TotalOptionCount        int
	QuestionsWithoutCorrect int
}

// Model owns the quiz title, the canonical question order, the mode, and
// the preview sessions. All question mutations are immutable updates.
type Model struct {
	title     string
	questions []Question
	mode      Mode
	sessions  map[string]*session
}

// NewModel returns an empty model in edit mode.
func NewModel() *Model {
	return &Model{sessions: map[string]*session{}}
}

// SetTitle sets the quiz title, truncated to MaxTitleLen runes.
func (m *Model) SetTitle(title string) {
	m.title = clamp(title, MaxTitleLen)
}

// Title returns the quiz title.
func (m *Model) Title() string { return m.title }

// Mode returns the current mode.
func (m *Model) Mode() Mode { return m.mode }

// Questions returns the canonical question order.
func (m *Model) Questions() []Question {
	out := make([]Question, len(m.questions))
	copy(out, m.questions)
	return out
}

// QuestionByID looks a question up by id.
func (m *Model) QuestionByID(id string) (Question, bool) {
	for _, q := range m.questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// AddQuestion appends a question with empty text, no options and no
// correct answers, and returns it.
func (m *Model) AddQuestion() Question {
	q := Question{ID: uuid.NewString()}
	next := make([]Question, len(m.questions), len(m.questions)+1)
	copy(next, m.questions)
	m.questions = append(next, q)
	return q
}

// UpdateQuestion replaces the whole record whose ID matches q.ID. The
// replacement is atomic; unknown ids are a no-op. Text is truncated to
// MaxQuestionLen runes.
func (m *Model) UpdateQuestion(q Question) bool {
	q.Text = clamp(q.Text, MaxQuestionLen)
	next := make([]Question, len(m.questions))
	copy(next, m.questions)
	for i := range next {
		if next[i].ID == q.ID {
			next[i] = q
			m.questions = next
			return true
		}
	}
	return false
}

// DeleteQuestion removes by id, dropping any preview session with it.
func (m *Model) DeleteQuestion(id string) {
	next := make([]Question, 0, len(m.questions))
	for _, q := range m.questions {
		if q.ID != id {
			next = append(next, q)
		}
	}
	m.questions = next
	delete(m.sessions, id)
}

// MoveQuestion swaps the question with its neighbor in the given
// direction. Moving the first question up or the last one down is a
// no-op, as is an unknown id.
func (m *Model) MoveQuestion(id string, dir Direction) {
	idx := -1
	for i, q := range m.questions {
		if q.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	target := idx - 1
	if dir == MoveDown {
		target = idx + 1
	}
	if target < 0 || target >= len(m.questions) {
		return
	}
	next := make([]Question, len(m.questions))
	copy(next, m.questions)
	next[idx], next[target] = next[target], next[idx]
	m.questions = next
}

// AddOption appends a blank option to the question. Returns false without
// changing anything once the question holds MaxOptions options.
func (m *Model) AddOption(questionID string) bool {
	q, ok := m.QuestionByID(questionID)
	if !ok || len(q.Options) >= MaxOptions {
		return false
	}
	opts := make([]Option, len(q.Options), len(q.Options)+1)
	copy(opts, q.Options)
	q.Options = append(opts, Option{ID: uuid.NewString()})
	return m.UpdateQuestion(q)
}

// UpdateOptionText replaces one option's text, truncated to MaxOptionLen
// runes. Unknown question or option ids are no-ops.
func (m *Model) UpdateOptionText(questionID, optionID, text string) {
	q, ok := m.QuestionByID(questionID)
	if !ok {
		return
	}
	opts := make([]Option, len(q.Options))
	copy(opts, q.Options)
	for i := range opts {
		if opts[i].ID == optionID {
			opts[i].Text = clamp(text, MaxOptionLen)
			q.Options = opts
			m.UpdateQuestion(q)
			return
		}
	}
}

// DeleteOption removes one option and re-indexes the correct markers in
// the same step: the removed position is dropped from CorrectIndexes and
// every higher index shifts down by one. Lower indexes are unaffected.
func (m *Model) DeleteOption(questionID, optionID string) {
	q, ok := m.QuestionByID(questionID)
	if !ok {
		return
	}
	removed := -1
	for i, o := range q.Options {
		if o.ID == optionID {
			removed = i
			break
		}
	}
	if removed < 0 {
		return
	}

	opts := make([]Option, 0, len(q.Options)-1)
	opts = append(opts, q.Options[:removed]...)
	opts = append(opts, q.Options[removed+1:]...)

	marks := make([]int, 0, len(q.CorrectIndexes))
	for _, idx := range q.CorrectIndexes {
		switch {
		case idx == removed:
			// referenced the deleted option, dropped
		case idx > removed:
			marks = append(marks, idx-1)
		default:
			marks = append(marks, idx)
		}
	}

	q.Options = opts
	q.CorrectIndexes = marks
	m.UpdateQuestion(q)
}

// ToggleCorrect flips membership of optionIndex in the question's correct
// marker set.
func (m *Model) ToggleCorrect(questionID string, optionIndex int) {
	q, ok := m.QuestionByID(questionID)
	if !ok {
		return
	}
	marks := make([]int, 0, len(q.CorrectIndexes)+1)
	found := false
	for _, idx := range q.CorrectIndexes {
		if idx == optionIndex {
			found = true
			continue
		}
		marks = append(marks, idx)
	}
	if !found {
		marks = append(marks, optionIndex)
	}
	q.CorrectIndexes = marks
	m.UpdateQuestion(q)
}

// SetMode switches between edit and preview. Every transition clears all
// preview sessions, so a self-check never carries over an edit/preview
// round-trip.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
	m.sessions = map[string]*session{}
}

// ToggleMode flips between the two modes.
func (m *Model) ToggleMode() {
	if m.mode == ModeEdit {
		m.SetMode(ModePreview)
	} else {
		m.SetMode(ModeEdit)
	}
}

// ToggleChosen flips one option in the question's self-check selection.
// Once the question is revealed the selection is frozen.
func (m *Model) ToggleChosen(questionID string, optionIndex int) {
	s := m.sessionFor(questionID)
	if s.revealed {
		return
	}
	if s.chosen[optionIndex] {
		delete(s.chosen, optionIndex)
	} else {
		s.chosen[optionIndex] = true
	}
}

// Reveal freezes the question's selection and enables verdicts.
func (m *Model) Reveal(questionID string) {
	m.sessionFor(questionID).revealed = true
}

// ResetPreview clears one question's selection and revealed flag.
func (m *Model) ResetPreview(questionID string) {
	delete(m.sessions, questionID)
}

// RevealAll reveals every question's self-check at once.
func (m *Model) RevealAll() {
	for _, q := range m.questions {
		m.Reveal(q.ID)
	}
}

// ResetAll clears every question's self-check session.
func (m *Model) ResetAll() {
	m.sessions = map[string]*session{}
}

// Chosen returns the currently selected option indexes for a question,
// in ascending order.
func (m *Model) Chosen(questionID string) []int {
	s, ok := m.sessions[questionID]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(s.chosen))
	for idx := range s.chosen {
		out = append(out, idx)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Revealed reports whether the question's self-check has been checked.
func (m *Model) Revealed(questionID string) bool {
	s, ok := m.sessions[questionID]
	return ok && s.revealed
}

// Classify returns the four-way verdict for one option of a revealed
// question. Before reveal every option is neutral.
func (m *Model) Classify(questionID string, optionIndex int) Verdict {
	if !m.Revealed(questionID) {
		return VerdictNeutral
	}
	q, ok := m.QuestionByID(questionID)
	if !ok {
		return VerdictNeutral
	}
	correct := false
	for _, idx := range q.CorrectIndexes {
		if idx == optionIndex {
			correct = true
			break
		}
	}
	chosen := m.sessions[questionID].chosen[optionIndex]
	switch {
	case correct && chosen:
		return VerdictCorrectChosen
	case correct:
		return VerdictMissed
	case chosen:
		return VerdictWrongChoice
	default:
		return VerdictNeutral
	}
}

// Statistics recomputes the editor summary from the current questions.
func (m *Model) Statistics() Stats {
	stats := Stats{QuestionCount: len(m.questions)}
	for _, q := range m.questions {
		stats.TotalOptionCount += len(q.Options)
		if len(q.CorrectIndexes) == 0 {
			stats.QuestionsWithoutCorrect++
		}
	}
	return stats
}

func (m *Model) sessionFor(id string) *session {
	s, ok := m.sessions[id]
	if !ok {
		s = &session{chosen: map[int]bool{}}
		m.sessions[id] = s
	}
	return s
}

func clamp(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// TrimmedTitle returns the title without surrounding whitespace, for the
// preview heading.
func (m *Model) TrimmedTitle() string {
	return strings.TrimSpace(m.title)
}
