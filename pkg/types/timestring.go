package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM" (без даты и таймзоны).
// Используется для границ рабочего дня и подписей слотов в сетке.
type TimeString string

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате строки времени
	ErrInvalidTimeFormat = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOverflow возвращается, когда результат операции выходит за пределы суток
	ErrTimeOverflow = errors.New("time overflows the day boundary")
)

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут от полуночи
func NewTimeStringFromMinutes(mins int) (TimeString, error) {
	if mins < 0 || mins > minutesPerDay {
		return "", ErrTimeOverflow
	}
	return TimeString(fmt.Sprintf("%02d:%02d", mins/60, mins%60)), nil
}

// Validate проверяет формат значения
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &h, &m); err != nil {
		return 0, ErrInvalidTimeFormat
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || h*60+m > minutesPerDay {
		return 0, ErrInvalidTimeFormat
	}
	return h*60 + m, nil
}

// AddMinutes возвращает время, сдвинутое на mins минут вперед.
// Возвращает ErrTimeOverflow при выходе за границу суток.
func (t TimeString) AddMinutes(mins int) (TimeString, error) {
	cur, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(cur + mins)
}

// IsBefore возвращает true, если t строго раньше other.
// Некорректные значения считаются равными (сравнение не паникует).
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a > b
}

// At привязывает время суток к конкретной дате в её локации
func (t TimeString) At(date time.Time) (time.Time, error) {
	mins, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, date.Location()), nil
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	// Postgres колонка time возвращает "HH:MM:SS" - обрезаем секунды
	if len(*t) == 8 {
		*t = (*t)[:5]
	}
	return t.Validate()
}
