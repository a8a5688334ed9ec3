package usecase

import (
	"context"
	"fmt"

	"smart-todo/internal/analysis"
	"smart-todo/internal/analysis/stats"
	"smart-todo/pkg/datemath"
)

var weekdayKo = map[string]string{
	"Sunday": "일요일", "Monday": "월요일", "Tuesday": "화요일", "Wednesday": "수요일",
	"Thursday": "목요일", "Friday": "금요일", "Saturday": "토요일",
}

var timeKo = map[string]string{
	stats.LabelDawn: "새벽", stats.LabelMorning: "오전", stats.LabelAfternoon: "오후", stats.LabelEvening: "저녁",
}

// templateNarrator writes a fixed-form narrative straight from the numbers.
// It is used when the service runs offline.
type templateNarrator struct{}

// NewTemplateNarrator builds a Narrator that makes no remote calls.
func NewTemplateNarrator() analysis.Narrator {
	return templateNarrator{}
}

func (templateNarrator) Narrate(ctx context.Context, period datemath.Period, s stats.Snapshot) (analysis.Narrative, error) {
	label := "오늘"
	if period == datemath.PeriodWeek {
		label = "이번 주"
	}

	n := analysis.Narrative{
		Summary:         fmt.Sprintf("%s 할 일 %d개 중 %d개를 완료했습니다 (완료율 %.0f%%).", label, s.Total, s.Completed, s.CompletionRate),
		UrgentTasks:     make([]string, 0, len(s.Urgent)),
		Insights:        []string{},
		Recommendations: []string{},
	}
	for _, u := range s.Urgent {
		n.UrgentTasks = append(n.UrgentTasks, u.Title)
	}

	if s.MostProductiveDay != "" {
		n.Insights = append(n.Insights, fmt.Sprintf("%s에 만든 할 일의 완료율이 가장 높습니다.", weekdayKo[s.MostProductiveDay]))
	}
	if s.MostProductiveTime != "" {
		n.Insights = append(n.Insights, fmt.Sprintf("%s에 등록한 할 일을 가장 잘 마무리합니다.", timeKo[s.MostProductiveTime]))
	}
	if s.Deadline.WithDueDate > 0 {
		n.Insights = append(n.Insights, fmt.Sprintf("마감 준수율은 %.0f%%이며 기한이 지난 할 일이 %d개 있습니다.", s.Deadline.ComplianceRate, s.Deadline.Overdue))
	}
	if len(s.Postponed.ByCategory) > 0 {
		n.Insights = append(n.Insights, fmt.Sprintf("'%s' 카테고리가 가장 자주 미뤄집니다.", s.Postponed.ByCategory[0].Label))
	}

	if s.Deadline.Overdue > 0 {
		n.Recommendations = append(n.Recommendations, "기한이 지난 할 일부터 정리하거나 마감일을 다시 잡아 보세요.")
	}
	if len(n.UrgentTasks) > 0 {
		n.Recommendations = append(n.Recommendations, fmt.Sprintf("'%s'부터 처리해 보세요.", n.UrgentTasks[0]))
	}
	if s.MostProductiveTime != "" {
		n.Recommendations = append(n.Recommendations, fmt.Sprintf("중요한 일은 %s 시간대에 배치해 보세요.", timeKo[s.MostProductiveTime]))
	}
	n.Recommendations = append(n.Recommendations, "큰 일은 30분 단위의 작은 할 일로 나누어 보세요.")

	return n, nil
}
