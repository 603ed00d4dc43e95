package main

import (
	"testing"

	driftest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
)

func classroomLesson(t *testing.T) catalog.Lesson {
	t.Helper()
	lesson, err := catalog.ByID(6)
	if err != nil {
		t.Fatal(err)
	}
	return lesson
}

func TestClassroomStartsEmpty(t *testing.T) {
	tester := driftest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(classroomPage{lesson: classroomLesson(t)}); err != nil {
		t.Fatal(err)
	}

	if !tester.Find(driftest.ByText("Няма добавени ученици")).Exists() {
		t.Errorf("empty roster message missing")
	}
	if !tester.Find(driftest.ByTextContaining("Ученици")).Exists() {
		t.Errorf("roster section missing")
	}
}

func TestClassroomAddStudentFlow(t *testing.T) {
	tester := driftest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(classroomPage{lesson: classroomLesson(t)}); err != nil {
		t.Fatal(err)
	}

	// Submitting the empty form changes nothing.
	if err := tester.Tap(driftest.ByText("Добави")); err != nil {
		t.Fatal(err)
	}
	tester.Pump()
	if !tester.Find(driftest.ByText("Няма добавени ученици")).Exists() {
		t.Errorf("empty form submission added a student")
	}

	// Fill the name and class fields through their controllers.
	fields := tester.Find(driftest.ByType[widgets.TextField]())
	if fields.Count() < 2 {
		t.Fatalf("expected at least 2 text fields, found %d", fields.Count())
	}
	nameField := fields.At(0).Widget().(widgets.TextField)
	classField := fields.At(1).Widget().(widgets.TextField)
	nameField.Controller.SetText("Иван Петров")
	classField.Controller.SetText("11А")

	if err := tester.Tap(driftest.ByText("Добави")); err != nil {
		t.Fatal(err)
	}
	tester.Pump()

	if !tester.Find(driftest.ByText("Иван Петров")).Exists() {
		t.Errorf("added student not rendered")
	}
	if !tester.Find(driftest.ByTextContaining("Клас: 11А")).Exists() {
		t.Errorf("student class not rendered")
	}
	if !tester.Find(driftest.ByText("Намерен 1 резултат")).Exists() {
		t.Errorf("result count announcement missing")
	}
	// The form clears after a successful add.
	if got := nameField.Controller.Text(); got != "" {
		t.Errorf("name field not cleared, still %q", got)
	}

	// Statistics stay undefined until a grade exists.
	if !tester.Find(driftest.ByText("–")).Exists() {
		t.Errorf("undefined statistics sentinel missing before any grade")
	}
}

func TestClassroomDeleteStudent(t *testing.T) {
	tester := driftest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(classroomPage{lesson: classroomLesson(t)}); err != nil {
		t.Fatal(err)
	}

	fields := tester.Find(driftest.ByType[widgets.TextField]())
	fields.At(0).Widget().(widgets.TextField).Controller.SetText("Мария Иванова")
	fields.At(1).Widget().(widgets.TextField).Controller.SetText("10Б")
	if err := tester.Tap(driftest.ByText("Добави")); err != nil {
		t.Fatal(err)
	}
	tester.Pump()

	if err := tester.Tap(driftest.ByText("Изтрий")); err != nil {
		t.Fatal(err)
	}
	tester.Pump()

	if tester.Find(driftest.ByText("Мария Иванова")).Exists() {
		t.Errorf("deleted student still rendered")
	}
	if !tester.Find(driftest.ByText("Няма добавени ученици")).Exists() {
		t.Errorf("empty roster message missing after delete")
	}
}
