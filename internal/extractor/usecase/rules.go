package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-todo/internal/extractor"
	"smart-todo/pkg/datemath"
)

// ruleInterpreter is the offline Interpreter. It knows a fixed vocabulary of
// date, time, priority and category words and resolves relative dates
// through datemath.Parser.
type ruleInterpreter struct {
	parser *datemath.Parser
}

// NewRuleInterpreter builds the deterministic Interpreter.
func NewRuleInterpreter(parser *datemath.Parser) extractor.Interpreter {
	return &ruleInterpreter{parser: parser}
}

// Korean date words and their datemath phrases.
var koreanDays = map[string]string{
	"오늘": "today",
	"내일": "tomorrow",
	"모레": "in 2 days",
	"어제": "yesterday",
}

var koreanWeekdays = map[string]string{
	"월요일": "monday",
	"화요일": "tuesday",
	"수요일": "wednesday",
	"목요일": "thursday",
	"금요일": "friday",
	"토요일": "saturday",
	"일요일": "sunday",
}

var (
	koreanDayPattern     = regexp.MustCompile(`(오늘|내일|모레|어제)`)
	koreanNextWeekday    = regexp.MustCompile(`다음\s*주\s*(월요일|화요일|수요일|목요일|금요일|토요일|일요일)`)
	koreanInDays         = regexp.MustCompile(`(\d+)\s*일\s*(후|뒤)`)
	englishDayPattern    = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday|next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|in \d+ (?:days?|weeks?|months?))\b`)
	koreanTimePattern    = regexp.MustCompile(`(오전|오후|아침|저녁|밤)?\s*(\d{1,2})\s*시(?:\s*(\d{1,2})\s*분|\s*(반))?`)
	englishTimePattern   = regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	priorityHighPattern  = regexp.MustCompile(`(?i)(긴급|급함|중요|asap|urgent|important)`)
	priorityLowPattern   = regexp.MustCompile(`(?i)(여유|나중에|someday|later)`)
	categoryKeywordOrder = []string{"업무", "건강", "학습", "쇼핑", "가족", "금융"}
)

var categoryKeywords = map[string][]string{
	"업무": {"회의", "미팅", "보고서", "업무", "출장", "발표", "meeting", "report"},
	"건강": {"운동", "병원", "헬스", "요가", "산책", "gym", "doctor"},
	"학습": {"공부", "강의", "시험", "독서", "study", "exam"},
	"쇼핑": {"장보기", "구매", "마트", "shopping", "buy"},
	"가족": {"엄마", "아빠", "가족", "부모님", "family"},
	"금융": {"은행", "카드", "송금", "월세", "세금", "bank"},
}

func (r *ruleInterpreter) Interpret(ctx context.Context, text string, now time.Time) (extractor.Candidate, error) {
	rest := text
	c := extractor.Candidate{}

	day, hasDay, err := r.matchDay(&rest, now)
	if err != nil {
		return extractor.Candidate{}, fmt.Errorf("%w: %v", extractor.ErrExtractionFailed, err)
	}
	hour, minute, hasTime := matchTime(&rest)

	switch {
	case hasDay && hasTime:
		c.DueDate = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()).Format("2006-01-02T15:04:05")
	case hasDay:
		c.DueDate = day.Format("2006-01-02")
	case hasTime:
		c.DueDate = time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()).Format("2006-01-02T15:04:05")
	}

	switch {
	case priorityHighPattern.MatchString(rest):
		c.Priority = "high"
		rest = priorityHighPattern.ReplaceAllString(rest, " ")
	case priorityLowPattern.MatchString(rest):
		c.Priority = "low"
		rest = priorityLowPattern.ReplaceAllString(rest, " ")
	}

	lower := strings.ToLower(rest)
	for _, cat := range categoryKeywordOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				c.Categories = append(c.Categories, cat)
				break
			}
		}
	}

	c.Title = strings.Join(strings.Fields(rest), " ")
	return c, nil
}

// matchDay finds the first date expression, removes it from *rest and
// returns the resolved day in now's location.
func (r *ruleInterpreter) matchDay(rest *string, now time.Time) (time.Time, bool, error) {
	phrase := ""
	var pattern *regexp.Regexp

	switch {
	case koreanNextWeekday.MatchString(*rest):
		pattern = koreanNextWeekday
		phrase = "next " + koreanWeekdays[koreanNextWeekday.FindStringSubmatch(*rest)[1]]
	case koreanInDays.MatchString(*rest):
		pattern = koreanInDays
		phrase = "in " + koreanInDays.FindStringSubmatch(*rest)[1] + " days"
	case koreanDayPattern.MatchString(*rest):
		pattern = koreanDayPattern
		phrase = koreanDays[koreanDayPattern.FindString(*rest)]
	case englishDayPattern.MatchString(*rest):
		pattern = englishDayPattern
		phrase = englishDayPattern.FindString(*rest)
	default:
		return time.Time{}, false, nil
	}

	day, err := r.parser.Parse(phrase, now)
	if err != nil {
		return time.Time{}, false, err
	}
	*rest = replaceFirst(pattern, *rest)
	return day.In(now.Location()), true, nil
}

// matchTime finds a clock time such as "오후 3시", "9시 반" or "3pm" and removes it.
func matchTime(rest *string) (int, int, bool) {
	if m := koreanTimePattern.FindStringSubmatch(*rest); m != nil {
		hour, _ := strconv.Atoi(m[2])
		minute := 0
		if m[3] != "" {
			minute, _ = strconv.Atoi(m[3])
		} else if m[4] != "" {
			minute = 30
		}
		switch m[1] {
		case "오후", "저녁", "밤":
			if hour < 12 {
				hour += 12
			}
		case "오전", "아침":
			if hour == 12 {
				hour = 0
			}
		}
		if hour > 23 || minute > 59 {
			return 0, 0, false
		}
		*rest = replaceFirst(koreanTimePattern, *rest)
		return hour, minute, true
	}

	if m := englishTimePattern.FindStringSubmatch(*rest); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, false
		}
		hour %= 12
		if strings.EqualFold(m[3], "pm") {
			hour += 12
		}
		*rest = replaceFirst(englishTimePattern, *rest)
		return hour, minute, true
	}

	return 0, 0, false
}

func replaceFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + " " + s[loc[1]:]
}
