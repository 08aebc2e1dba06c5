package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// LocalDateTimeLayout формат даты-времени без часового пояса, который использует backend
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// ErrInvalidDateTime возвращается при некорректной строке даты-времени
var ErrInvalidDateTime = errors.New("invalid date-time format")

var localDateTimeLayouts = []string{
	LocalDateTimeLayout,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.RFC3339Nano,
}

// LocalDateTime дата-время "по настенным часам" клиники.
// Значения без зоны парсятся как UTC и так же форматируются обратно,
// поэтому HH:MM всегда совпадает с тем, что хранит backend
type LocalDateTime struct {
	time.Time
}

// ParseLocalDateTime парсит все форматы, которые встречаются в ответах backend
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	for _, layout := range localDateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalDateTime{Time: t}, nil
		}
	}
	return LocalDateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// String возвращает значение в формате backend
func (d LocalDateTime) String() string {
	return d.Format(LocalDateTimeLayout)
}

// MarshalJSON сериализует без часового пояса
func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON десериализует строку; null и пустая строка запрещены
func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidDateTime)
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}

	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
