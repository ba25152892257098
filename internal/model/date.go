// Package model はドメインモデルを定義する。
package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout は日付の入出力に使うISO 8601形式（YYYY-MM-DD）。
const DateLayout = "2006-01-02"

// Date はタイムゾーンを持たない暦日を表す。
// 内部的にはUTCの0時として保持する。
type Date struct {
	t time.Time
}

// NewDate は年月日からDateを生成する。
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf はtime.Timeの暦日部分からDateを生成する。時刻とタイムゾーンは捨てる。
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate は文字列を暦日として解釈する。
// YYYY-MM-DD を基本とし、時刻付きの入力（RFC3339、"YYYY-MM-DD HH:MM:SS"、"YYYY-MM-DDTHH:MM:SS"）は
// 日付部分のみを採用する。解釈できない場合はエラーを返す。
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("date is empty")
	}

	for _, layout := range []string{DateLayout, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return checkYear(DateOf(t))
		}
	}

	return Date{}, fmt.Errorf("failed to parse date %q: expected YYYY-MM-DD", s)
}

// checkYear は西暦1年より前の日付を拒否する。PostgreSQLのDATE型は紀元前を"BC"表記でしか受け付けない。
func checkYear(d Date) (Date, error) {
	if d.t.Year() < 1 {
		return Date{}, fmt.Errorf("date %s is out of range: year must be 1 or later", d)
	}
	return d, nil
}

// String はYYYY-MM-DD形式の文字列を返す。
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Time はUTC 0時のtime.Timeを返す。
func (d Date) Time() time.Time {
	return d.t
}

// IsZero はゼロ値かどうかを返す。
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Equal は同じ暦日かどうかを返す。
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}
