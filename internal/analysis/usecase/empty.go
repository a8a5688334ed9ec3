package usecase

import (
	"smart-todo/internal/analysis"
	"smart-todo/pkg/datemath"
)

const emptyEncouragement = "새로운 할 일을 추가하고 계획을 세워 보세요!"

// EmptyNarrative is returned when the window holds no tasks.
func EmptyNarrative(period datemath.Period) analysis.Narrative {
	summary := "오늘 등록된 할 일이 없습니다."
	if period == datemath.PeriodWeek {
		summary = "이번 주에 등록된 할 일이 없습니다."
	}
	return analysis.Narrative{
		Summary:         summary,
		UrgentTasks:     []string{},
		Insights:        []string{emptyEncouragement},
		Recommendations: []string{},
	}
}
