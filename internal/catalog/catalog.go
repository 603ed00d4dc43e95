// Package catalog supplies the ordered lesson metadata rendered by the
// gallery: titles, navigation paths, difficulty tags, descriptions and
// optional hints and code samples. The records are authored in an
// embedded YAML document.
package catalog

import (
	"errors"
	"fmt"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var lessonsYAML []byte

// Difficulty tags a lesson for the index and the lesson header.
type Difficulty string

const (
	Easy     Difficulty = "easy"
	Medium   Difficulty = "medium"
	Hard     Difficulty = "hard"
	VeryHard Difficulty = "very-hard"
)

// Label returns the difficulty's display text.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Лесна"
	case Medium:
		return "Средна"
	case Hard:
		return "Сложна"
	case VeryHard:
		return "Много сложна"
	}
	return string(d)
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard, VeryHard:
		return true
	}
	return false
}

// Lesson is one catalog record. Hint and CodeExample are optional.
type Lesson struct {
	ID          int        `yaml:"id"`
	Title       string     `yaml:"title"`
	Path        string     `yaml:"path"`
	Difficulty  Difficulty `yaml:"difficulty"`
	Description string     `yaml:"description"`
	Hint        string     `yaml:"hint"`
	CodeExample string     `yaml:"code_example"`
}

type document struct {
	Lessons []Lesson `yaml:"lessons"`
}

var (
	// ErrNotFound is returned by lookups that miss.
	ErrNotFound = errors.New("lesson not found")

	lessons []Lesson
)

func init() {
	var err error
	lessons, err = decode(lessonsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded lessons are invalid: %v", err))
	}
}

func decode(data []byte) ([]Lesson, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding lessons: %w", err)
	}
	if err := validate(doc.Lessons); err != nil {
		return nil, err
	}
	return doc.Lessons, nil
}

// Lessons returns all records in catalog order.
func Lessons() []Lesson {
	out := make([]Lesson, len(lessons))
	copy(out, lessons)
	return out
}

// ByID finds a lesson by its numeric id.
func ByID(id int) (Lesson, error) {
	for _, l := range lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// ByPath finds a lesson by its navigation path.
func ByPath(path string) (Lesson, error) {
	for _, l := range lessons {
		if l.Path == path {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("%w: path %s", ErrNotFound, path)
}

// Validate checks lesson records for catalog integrity: unique ids and
// paths, non-empty titles, descriptions and paths, known difficulties.
func Validate(records []Lesson) error {
	return validate(records)
}

func validate(records []Lesson) error {
	ids := map[int]bool{}
	paths := map[string]bool{}
	for _, l := range records {
		if l.ID <= 0 {
			return fmt.Errorf("lesson %q: id must be positive", l.Title)
		}
		if ids[l.ID] {
			return fmt.Errorf("duplicate lesson id %d", l.ID)
		}
		ids[l.ID] = true
		if l.Title == "" {
			return fmt.Errorf("lesson %d: empty title", l.ID)
		}
		if l.Description == "" {
			return fmt.Errorf("lesson %d: empty description", l.ID)
		}
		if l.Path == "" {
			return fmt.Errorf("lesson %d: empty path", l.ID)
		}
		if paths[l.Path] {
			return fmt.Errorf("duplicate lesson path %s", l.Path)
		}
		paths[l.Path] = true
		if !l.Difficulty.Valid() {
			return fmt.Errorf("lesson %d: unknown difficulty %q", l.ID, l.Difficulty)
		}
	}
	return nil
}
