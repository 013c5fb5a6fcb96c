package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// Формат времени суток, используемый во всех API и в БД (колонки TIME)
const timeOfDayLayout = "15:04:05"

// Короткий формат без секунд, принимаем его на входе для удобства клиентов
const timeOfDayShortLayout = "15:04"

var (
	// ErrInvalidTimeOfDay возвращается при некорректном формате времени суток
	ErrInvalidTimeOfDay = errors.New("types: invalid time of day, expected HH:MM or HH:MM:SS")

	// ErrTimeOutOfDay возвращается, когда операция выводит время за границы суток
	ErrTimeOutOfDay = errors.New("types: time is out of day bounds")
)

// TimeOfDay время суток без привязки к дате ("09:30:00")
// Хранится строкой, чтобы без потерь ездить между JSON, БД и доменной логикой
type TimeOfDay string

// NewTimeOfDay создает TimeOfDay из time.Time (берёт только часы/минуты/секунды)
func NewTimeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay(t.Format(timeOfDayLayout))
}

// ParseTimeOfDay парсит строку в формате HH:MM:SS или HH:MM
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if t, err := time.Parse(timeOfDayLayout, s); err == nil {
		return NewTimeOfDay(t), nil
	}
	if t, err := time.Parse(timeOfDayShortLayout, s); err == nil {
		return NewTimeOfDay(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// String возвращает строковое представление в формате HH:MM:SS
func (t TimeOfDay) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeOfDay) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата
func (t TimeOfDay) Validate() error {
	_, err := t.parse()
	return err
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return string(t) > string(other)
}

// Equal возвращает true при совпадении времени
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return string(t) == string(other)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Выход за границы суток считается ошибкой
func (t TimeOfDay) AddMinutes(minutes int) (TimeOfDay, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("%w: %s + %dm", ErrTimeOutOfDay, t, minutes)
	}

	return NewTimeOfDay(shifted), nil
}

// At совмещает время суток с датой date (дата берётся без времени)
func (t TimeOfDay) At(date time.Time) (time.Time, error) {
	parsed, err := t.parse()
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0,
		date.Location(),
	), nil
}

func (t TimeOfDay) parse() (time.Time, error) {
	parsed, err := time.Parse(timeOfDayLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, string(t))
	}
	return parsed, nil
}

// Scan реализует sql.Scanner (PostgreSQL TIME приходит как строка или time.Time)
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeOfDay(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeOfDay, src)
	}
}

// Value реализует driver.Valuer
func (t TimeOfDay) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
