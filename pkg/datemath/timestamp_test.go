package datemath_test

import (
	"errors"
	"testing"
	"time"

	"smart-todo/pkg/datemath"
)

func TestParseTimestamp(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Seoul")
	seoul := parser.Location()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-05-02T15:00:00+09:00", time.Date(2024, 5, 2, 6, 0, 0, 0, time.UTC)},
		{"2024-05-02T06:00:00.500Z", time.Date(2024, 5, 2, 6, 0, 0, 500_000_000, time.UTC)},
		{"2024-05-02T15:00:00", time.Date(2024, 5, 2, 15, 0, 0, 0, seoul)},
		{" 2024-05-02 15:00:00 ", time.Date(2024, 5, 2, 15, 0, 0, 0, seoul)},
		{"2024-05-02", time.Date(2024, 5, 2, 0, 0, 0, 0, seoul)},
	}
	for _, tt := range tests {
		got, err := parser.ParseTimestamp(tt.in)
		if err != nil {
			t.Errorf("ParseTimestamp(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "tomorrow", "2024/05/02", "2024-13-01"} {
		if _, err := parser.ParseTimestamp(bad); !errors.Is(err, datemath.ErrInvalidTimestamp) {
			t.Errorf("ParseTimestamp(%q): err = %v", bad, err)
		}
	}
}
