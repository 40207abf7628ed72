// Package render formats plans for the terminal.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mindstep/aiplan/internal/plan"
	"github.com/mindstep/aiplan/internal/ui/theme"
)

// Plan renders p as a styled report.
func Plan(p *plan.Plan) string {
	var sections []string

	sections = append(sections,
		theme.Title.Render("训练方案 "+p.UserType.Label()),
		theme.Subtitle.Render(p.PlanID),
	)
	if p.Trace.Rule != "" {
		sections = append(sections, theme.Hint.Render("rule: "+p.Trace.Rule))
	}

	sections = append(sections, "", paragraph("概述", p.Overview), paragraph("方案说明", p.TrainingPlanIntro))

	for _, m := range p.Modules {
		sections = append(sections, module(m))
	}

	if p.ScorePrediction != "" {
		sections = append(sections, paragraph("预期效果", p.ScorePrediction))
	}
	sections = append(sections, list("家庭建议", p.HomeAdvice), list("跟踪调整", p.TrackingAndAdjustment))

	if len(p.Trace.Dropped) > 0 {
		sections = append(sections, theme.Hint.Render("dropped: "+strings.Join(p.Trace.Dropped, ", ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func module(m plan.TrainingModule) string {
	lines := []string{theme.Heading.Render(m.ModuleName)}
	for i, it := range m.Items {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, theme.Body.Bold(true).Render(it.Name))
		lines = append(lines,
			field("任务", it.TasksText),
			field("难度", it.DifficultyText),
			field("频次", it.FrequencyText),
			field("目标", it.GoalText),
		)
		if it.Description != "" {
			lines = append(lines, field("说明", it.Description))
		}
	}
	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, theme.Label.Render(label), theme.Body.Render(value))
}

func paragraph(title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, theme.Heading.Render(title), theme.Body.Render(body), "")
}

func list(title string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	lines := []string{theme.Heading.Render(title)}
	for i, s := range items {
		lines = append(lines, theme.Body.Render(fmt.Sprintf("%d. %s", i+1, s)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
