// internal/model/date.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout は日付のワイヤフォーマット (ISO 8601 の日付部分)
const DateLayout = "2006-01-02"

// Date は時刻・タイムゾーンを持たない暦日です。
// 計測日の同一判定を文字列の切り出しではなく型で行うための値型で、
// JSONでは "2006-01-02"、DBでは date カラムとして扱われます。
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf は時刻情報を切り捨てて暦日に変換します (タイムゾーンは t のものを使用)
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("model.ParseDate: %w", err)
	}
	return DateOf(t), nil
}

// Time は UTC の深夜0時として time.Time に変換します
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func (d Date) AddDays(days int) Date {
	return DateOf(d.Time().AddDate(0, 0, days))
}

// DiffDays は d - other を日数で返します
func (d Date) DiffDays(other Date) int {
	return int(d.Time().Sub(other.Time()) / (24 * time.Hour))
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value は database/sql/driver.Valuer の実装
func (d Date) Value() (driver.Value, error) {
	return d.Time(), nil
}

// Scan は database/sql.Scanner の実装。ドライバにより time.Time または
// 文字列で返ってくるため両方を受け付けます。
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v[:min(len(v), len(DateLayout))])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("model.Date: cannot scan %T", value)
	}
}

// GormDataType は gorm にカラム型を伝えます
func (Date) GormDataType() string {
	return "date"
}
