package main

import (
	"strconv"
	"strings"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/overlay"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"widget-lessons/internal/roster"
)

// showGradeDialog opens the grade-entry modal for one student. onSubmit
// returns whether the store accepted the score; on rejection (non-numeric
// or outside [2,6]) the dialog stays open so the value can be corrected.
func showGradeDialog(ctx core.BuildContext, studentName string, onSubmit func(score float64) bool) {
	controller := platform.NewTextEditingController("")

	overlay.ShowDialog(ctx, overlay.DialogOptions{
		BarrierColor: graphics.RGBA(0, 0, 0, 0.5),
		Builder: func(ctx core.BuildContext, close func()) core.Widget {
			_, colors, textTheme := theme.UseTheme(ctx)

			submit := func() {
				score, err := strconv.ParseFloat(strings.TrimSpace(controller.Text()), 64)
				if err != nil || !onSubmit(score) {
					platform.Haptics.Impact(platform.HapticError)
					return
				}
				close()
			}

			return overlay.Dialog{
				Width: 320,
				Child: widgets.PaddingAll(20, widgets.Column{
					MainAxisAlignment:  widgets.MainAxisAlignmentStart,
					CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
					MainAxisSize:       widgets.MainAxisSizeMin,
					Children: []core.Widget{
						widgets.Text{Content: "Оценка за " + studentName, Style: textTheme.HeadlineSmall},
						widgets.VSpace(8),
						widgets.TextOf(
							"От "+formatScore(roster.MinScore)+" до "+formatScore(roster.MaxScore),
							labelStyle(colors),
						),
						widgets.VSpace(16),
						widgets.TextField{
							Label:        "Оценка",
							Controller:   controller,
							Placeholder:  "5.50",
							KeyboardType: platform.KeyboardTypeNumber,
							InputAction:  platform.TextInputActionDone,
							Autocorrect:  false,
							BorderRadius: 8,
							OnSubmitted: func(text string) {
								submit()
							},
						},
						widgets.VSpace(20),
						widgets.RowOf(
							widgets.MainAxisAlignmentEnd,
							widgets.CrossAxisAlignmentCenter,
							widgets.MainAxisSizeMax,

							widgets.NewButton("Отказ", func() {
								close()
							}).WithColor(colors.SurfaceVariant, colors.OnSurfaceVariant),
							widgets.HSpace(10),
							widgets.NewButton("Запази", func() {
								submit()
							}).WithColor(colors.Primary, colors.OnPrimary),
						),
					},
				}),
			}
		},
	})
}
