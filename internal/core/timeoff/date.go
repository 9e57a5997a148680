package timeoff

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout は申請期間の受け渡しに使う暦日形式です。
	DateLayout = "2006-01-02"
	// InstantLayout は作成日時などの受け渡しに使うミリ秒精度の RFC 3339 形式です。
	InstantLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ParseDate は YYYY-MM-DD 形式の文字列を UTC の日付に変換します。
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", raw, ErrInvalidDate)
	}
	return t, nil
}

// FormatDate は日付を YYYY-MM-DD 形式に変換します。
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatInstant は日時を UTC の InstantLayout で表現します。
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
