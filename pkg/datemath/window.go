package datemath

import "time"

// Today returns the window covering now's calendar date.
func (p *Parser) Today(now time.Time) Window {
	return Window{
		Period: PeriodToday,
		Start:  p.StartOfDay(now),
		End:    p.EndOfDay(now),
	}
}

// Week returns the Monday-to-Sunday window containing now.
func (p *Parser) Week(now time.Time) Window {
	local := now.In(p.location)

	offset := int(local.Weekday()) - 1
	if local.Weekday() == time.Sunday {
		offset = 6
	}

	monday := local.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)

	return Window{
		Period: PeriodWeek,
		Start:  p.StartOfDay(monday),
		End:    p.EndOfDay(sunday),
	}
}

// Window returns the window for period. Unknown periods resolve to today.
func (p *Parser) Window(period Period, now time.Time) Window {
	if period == PeriodWeek {
		return p.Week(now)
	}
	return p.Today(now)
}
