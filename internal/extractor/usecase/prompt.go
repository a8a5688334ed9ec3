package usecase

import (
	"fmt"
	"time"
)

const extractSystemPrompt = `You turn one Korean or English to-do sentence into a single JSON object.

Fields:
- title: short task title, without date or time words (required)
- description: extra details, or an empty string
- due_date: "YYYY-MM-DD" or "YYYY-MM-DDTHH:MM:SS" in the user's local time, or null when no date is mentioned.
  Resolve relative words (오늘, 내일, 모레, 다음 주 금요일, tomorrow, next Friday) against the current time given below.
  오전/오후 (am/pm) and 아침/점심/저녁/밤 set the time of day.
- priority: "high" for 긴급/중요/ASAP/urgent, "low" for 여유/나중에/someday, otherwise "medium"
- category: array of labels chosen from 업무, 개인, 건강, 학습, 쇼핑, 가족, 금융 (one or more)

Answer with the JSON object only. No markdown, no explanation.`

// buildExtractPrompt embeds the current local date and time the model must
// resolve relative dates against.
func buildExtractPrompt(text string, now time.Time) string {
	return fmt.Sprintf("CURRENT TIME: %s (%s)\nTIMEZONE: %s\n\nINPUT:\n%s",
		now.Format("2006-01-02T15:04:05"),
		now.Weekday(),
		now.Location(),
		text,
	)
}
