package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/catalog"
	"widget-lessons/internal/quiz"
)

// buildQuizBuilderLesson creates the quiz constructor lesson.
func buildQuizBuilderLesson(ctx core.BuildContext, lesson catalog.Lesson) core.Widget {
	return quizBuilderPage{lesson: lesson}
}

type quizBuilderPage struct {
	lesson catalog.Lesson
}

func (p quizBuilderPage) CreateElement() core.Element {
	return core.NewStatefulElement(p, nil)
}

func (p quizBuilderPage) Key() any {
	return nil
}

func (p quizBuilderPage) CreateState() core.State {
	return &quizBuilderState{lesson: p.lesson}
}

// quizBuilderState owns the quiz model. Text controllers are keyed by
// entity id so they stay attached across reorders and deletes.
type quizBuilderState struct {
	core.StateBase
	lesson          catalog.Lesson
	model           *quiz.Model
	titleController *platform.TextEditingController
	controllers     map[string]*platform.TextEditingController
}

func (s *quizBuilderState) InitState() {
	s.model = quiz.NewModel()
	s.model.SetTitle("Нов тест")
	s.titleController = platform.NewTextEditingController(s.model.Title())
	s.controllers = map[string]*platform.TextEditingController{}
}

// controllerFor returns the text controller for an entity, creating it
// with the given initial text on first use.
func (s *quizBuilderState) controllerFor(id, initial string) *platform.TextEditingController {
	c, ok := s.controllers[id]
	if !ok {
		c = platform.NewTextEditingController(initial)
		s.controllers[id] = c
	}
	return c
}

func (s *quizBuilderState) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	items := []core.Widget{s.modeToggle(colors), widgets.VSpace(20)}
	if s.model.Mode() == quiz.ModeEdit {
		items = append(items, s.buildEditor(colors)...)
	} else {
		items = append(items, s.buildPreview(colors)...)
	}

	demo := demoCard(colors, widgets.Column{
		MainAxisAlignment:  widgets.MainAxisAlignmentStart,
		CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
		MainAxisSize:       widgets.MainAxisSizeMin,
		Children:           items,
	})

	return lessonPage(ctx, s.lesson, demo)
}

// modeToggle renders the two-button Edit/Preview switch. Both directions
// are always available; every flip resets the self-check sessions.
func (s *quizBuilderState) modeToggle(colors theme.ColorScheme) core.Widget {
	button := func(label string, mode quiz.Mode) core.Widget {
		active := s.model.Mode() == mode
		bg, fg := colors.SurfaceVariant, colors.OnSurfaceVariant
		if active {
			bg, fg = colors.Primary, colors.OnPrimary
		}
		return widgets.NewButton(label, func() {
			s.SetState(func() {
				s.model.SetMode(mode)
			})
		}).WithColor(bg, fg)
	}

	return widgets.RowOf(
		widgets.MainAxisAlignmentStart,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMin,

		button("Редактиране", quiz.ModeEdit),
		widgets.HSpace(10),
		button("Преглед", quiz.ModePreview),
	)
}

func (s *quizBuilderState) buildEditor(colors theme.ColorScheme) []core.Widget {
	items := []core.Widget{
		widgets.TextField{
			Label:        "Заглавие на теста",
			Controller:   s.titleController,
			Placeholder:  "Нов тест",
			KeyboardType: platform.KeyboardTypeText,
			InputAction:  platform.TextInputActionDone,
			Autocorrect:  false,
			BorderRadius: 8,
			OnChanged: func(text string) {
				s.SetState(func() {
					s.model.SetTitle(text)
				})
			},
		},
		lengthHint(len([]rune(s.titleController.Text())), quiz.MaxTitleLen, colors),
		widgets.VSpace(20),
	}

	questions := s.model.Questions()
	for i, q := range questions {
		items = append(items, s.questionEditor(i, q, len(questions), colors), widgets.VSpace(14))
	}

	items = append(items,
		widgets.NewButton("+ Нов въпрос", func() {
			s.SetState(func() {
				s.model.AddQuestion()
			})
		}).WithColor(colors.Primary, colors.OnPrimary),
		widgets.VSpace(20),
		quizStatsCard(s.model.Statistics(), colors),
	)
	return items
}

// questionEditor renders one question's mutation controls.
func (s *quizBuilderState) questionEditor(index int, q quiz.Question, total int, colors theme.ColorScheme) core.Widget {
	id := q.ID

	header := widgets.RowOf(
		widgets.MainAxisAlignmentSpaceBetween,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMax,

		widgets.Text{
			Content: "Въпрос " + itoa(index+1),
			Style: graphics.TextStyle{
				Color:      colors.OnSurface,
				FontSize:   14,
				FontWeight: graphics.FontWeightSemibold,
			},
		},
		widgets.RowOf(
			widgets.MainAxisAlignmentEnd,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMin,

			moveButton("↑", index > 0, func() {
				s.SetState(func() {
					s.model.MoveQuestion(id, quiz.MoveUp)
				})
			}, colors),
			widgets.HSpace(6),
			moveButton("↓", index < total-1, func() {
				s.SetState(func() {
					s.model.MoveQuestion(id, quiz.MoveDown)
				})
			}, colors),
			widgets.HSpace(6),
			moveButton("✕", true, func() {
				s.SetState(func() {
					s.model.DeleteQuestion(id)
				})
			}, colors),
		),
	)

	children := []core.Widget{
		header,
		widgets.VSpace(10),
		widgets.TextField{
			Label:        "Текст на въпроса",
			Controller:   s.controllerFor(id, q.Text),
			Placeholder:  "Напиши въпроса тук...",
			KeyboardType: platform.KeyboardTypeText,
			InputAction:  platform.TextInputActionDone,
			Autocorrect:  false,
			BorderRadius: 8,
			OnChanged: func(text string) {
				s.SetState(func() {
					if current, ok := s.model.QuestionByID(id); ok {
						current.Text = text
						s.model.UpdateQuestion(current)
					}
				})
			},
		},
		lengthHint(len([]rune(q.Text)), quiz.MaxQuestionLen, colors),
		widgets.VSpace(10),
	}

	for optionIndex, option := range q.Options {
		children = append(children, s.optionEditor(q, optionIndex, option, colors), widgets.VSpace(8))
	}

	atCap := len(q.Options) >= quiz.MaxOptions
	children = append(children, widgets.Button{
		Label:        "Добави отговор (макс. " + itoa(quiz.MaxOptions) + ")",
		Disabled:     atCap,
		Color:        colors.SurfaceVariant,
		TextColor:    colors.OnSurfaceVariant,
		FontSize:     13,
		Padding:      layout.EdgeInsetsSymmetric(12, 8),
		BorderRadius: 6,
		OnTap: func() {
			s.SetState(func() {
				s.model.AddOption(id)
			})
		},
	})

	if len(q.CorrectIndexes) == 0 {
		children = append(children,
			widgets.VSpace(8),
			widgets.Text{
				Content: "⚠ Няма маркиран верен отговор",
				Style: graphics.TextStyle{
					Color:    0xFFFFB300,
					FontSize: 12,
				},
			},
		)
	}

	return widgets.DecoratedBox{
		Color:        colors.Surface,
		BorderColor:  colors.OutlineVariant,
		BorderWidth:  1,
		BorderRadius: 10,
		Child: widgets.PaddingAll(12, widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
			MainAxisSize:       widgets.MainAxisSizeMin,
			Children:           children,
		}),
	}
}

// optionEditor renders one answer row: correct marker, text field and a
// delete button.
func (s *quizBuilderState) optionEditor(q quiz.Question, optionIndex int, option quiz.Option, colors theme.ColorScheme) core.Widget {
	questionID, optionID := q.ID, option.ID

	correct := false
	for _, idx := range q.CorrectIndexes {
		if idx == optionIndex {
			correct = true
			break
		}
	}

	return widgets.RowOf(
		widgets.MainAxisAlignmentStart,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMax,

		widgets.Checkbox{
			Value: correct,
			OnChanged: func(value bool) {
				s.SetState(func() {
					s.model.ToggleCorrect(questionID, optionIndex)
				})
			},
		},
		widgets.HSpace(8),
		widgets.Expanded{
			Child: widgets.TextField{
				Controller:   s.controllerFor(optionID, option.Text),
				Placeholder:  "Отговор " + itoa(optionIndex+1),
				KeyboardType: platform.KeyboardTypeText,
				InputAction:  platform.TextInputActionDone,
				Autocorrect:  false,
				BorderRadius: 8,
				OnChanged: func(text string) {
					s.SetState(func() {
						s.model.UpdateOptionText(questionID, optionID, text)
					})
				},
			},
		},
		widgets.HSpace(8),
		moveButton("✕", true, func() {
			s.SetState(func() {
				s.model.DeleteOption(questionID, optionID)
			})
		}, colors),
	)
}

func (s *quizBuilderState) buildPreview(colors theme.ColorScheme) []core.Widget {
	title := s.model.TrimmedTitle()
	if title == "" {
		title = "(без заглавие)"
	}

	items := []core.Widget{
		widgets.Text{
			Content: title,
			Wrap:    true,
			Style: graphics.TextStyle{
				Color:      colors.OnSurface,
				FontSize:   20,
				FontWeight: graphics.FontWeightBold,
			},
		},
		widgets.VSpace(16),
	}

	questions := s.model.Questions()
	if len(questions) == 0 {
		items = append(items, statusCard("Тестът още няма въпроси", colors))
		return items
	}

	for i, q := range questions {
		items = append(items, s.questionPreview(i, q, colors), widgets.VSpace(14))
	}

	items = append(items, widgets.RowOf(
		widgets.MainAxisAlignmentStart,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMin,

		widgets.NewButton("Провери теста", func() {
			s.SetState(func() {
				s.model.RevealAll()
			})
		}).WithColor(colors.Primary, colors.OnPrimary),
		widgets.HSpace(10),
		widgets.NewButton("Нулирай", func() {
			s.SetState(func() {
				s.model.ResetAll()
			})
		}).WithColor(colors.SurfaceVariant, colors.OnSurfaceVariant),
	))
	return items
}

// questionPreview renders one question as the student sees it: tappable
// answers, then verdict coloring once revealed.
func (s *quizBuilderState) questionPreview(index int, q quiz.Question, colors theme.ColorScheme) core.Widget {
	id := q.ID
	revealed := s.model.Revealed(id)

	text := q.Text
	if text == "" {
		text = "(без текст)"
	}

	children := []core.Widget{
		widgets.Text{
			Content: itoa(index+1) + ". " + text,
			Wrap:    true,
			Style: graphics.TextStyle{
				Color:      colors.OnSurface,
				FontSize:   15,
				FontWeight: graphics.FontWeightSemibold,
			},
		},
		widgets.VSpace(10),
	}

	chosen := map[int]bool{}
	for _, idx := range s.model.Chosen(id) {
		chosen[idx] = true
	}

	for optionIndex, option := range q.Options {
		children = append(children,
			s.previewOption(id, optionIndex, option, chosen[optionIndex], colors),
			widgets.VSpace(6),
		)
	}

	label, action := "Провери", s.model.Reveal
	if revealed {
		label, action = "Нулирай", s.model.ResetPreview
	}
	children = append(children,
		widgets.VSpace(4),
		widgets.RowOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMin,

			smallButton(label, func() {
				s.SetState(func() {
					action(id)
				})
			}, colors),
		),
	)

	return widgets.DecoratedBox{
		Color:        colors.Surface,
		BorderColor:  colors.OutlineVariant,
		BorderWidth:  1,
		BorderRadius: 10,
		Child: widgets.PaddingAll(12, widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
			MainAxisSize:       widgets.MainAxisSizeMin,
			Children:           children,
		}),
	}
}

// previewOption renders one tappable answer. Before reveal the chosen
// rows are outlined; after reveal the four-way verdict drives the colors.
func (s *quizBuilderState) previewOption(questionID string, optionIndex int, option quiz.Option, chosen bool, colors theme.ColorScheme) core.Widget {
	text := option.Text
	if text == "" {
		text = "(празен отговор)"
	}

	bg := colors.SurfaceContainer
	fg := colors.OnSurface
	border := colors.OutlineVariant
	marker := ""

	if s.model.Revealed(questionID) {
		switch s.model.Classify(questionID, optionIndex) {
		case quiz.VerdictCorrectChosen:
			bg, fg, border = 0xFF2E7D32, 0xFFFFFFFF, 0xFF2E7D32
			marker = " ✓"
		case quiz.VerdictMissed:
			bg, fg, border = 0xFFFFB300, 0xFF000000, 0xFFFFB300
			marker = " (пропуснат)"
		case quiz.VerdictWrongChoice:
			bg, fg, border = 0xFFC62828, 0xFFFFFFFF, 0xFFC62828
			marker = " ✕"
		}
	} else if chosen {
		border = colors.Primary
	}

	return widgets.Tappable(
		text,
		func() {
			s.SetState(func() {
				s.model.ToggleChosen(questionID, optionIndex)
			})
		},
		widgets.DecoratedBox{
			Color:        bg,
			BorderColor:  border,
			BorderWidth:  1,
			BorderRadius: 8,
			Child: widgets.Padding{
				Padding: layout.EdgeInsetsSymmetric(12, 10),
				Child: widgets.Text{
					Content: text + marker,
					Wrap:    true,
					Style: graphics.TextStyle{
						Color:    fg,
						FontSize: 14,
					},
				},
			},
		},
	)
}

// moveButton is a compact icon button; a disabled one renders dimmed and
// ignores taps.
func moveButton(glyph string, enabled bool, onTap func(), colors theme.ColorScheme) core.Widget {
	fg := colors.OnSurface
	if !enabled {
		fg = colors.OutlineVariant
		onTap = func() {}
	}
	return widgets.GestureDetector{
		OnTap: onTap,
		Child: widgets.Container{
			Color:        colors.SurfaceContainerHigh,
			BorderRadius: 6,
			Padding:      layout.EdgeInsetsSymmetric(10, 6),
			Child: widgets.Text{Content: glyph, Style: graphics.TextStyle{
				Color:    fg,
				FontSize: 13,
			}},
		},
	}
}

// quizStatsCard shows the editor summary with the missing-correct-answer
// warning.
func quizStatsCard(stats quiz.Stats, colors theme.ColorScheme) core.Widget {
	children := []core.Widget{
		widgets.TextOf(
			"Въпроси: "+itoa(stats.QuestionCount)+" | Отговори: "+itoa(stats.TotalOptionCount),
			labelStyle(colors),
		),
	}
	if stats.QuestionsWithoutCorrect > 0 {
		children = append(children,
			widgets.VSpace(6),
			widgets.Text{
				Content: "⚠ Въпроси без верен отговор: " + itoa(stats.QuestionsWithoutCorrect),
				Style: graphics.TextStyle{
					Color:    0xFFFFB300,
					FontSize: 13,
				},
			},
		)
	}

	return widgets.DecoratedBox{
		Color:        colors.SurfaceContainer,
		BorderRadius: 10,
		Child: widgets.PaddingAll(14, widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
			MainAxisSize:       widgets.MainAxisSizeMin,
			Children:           children,
		}),
	}
}
