// Package schedule реализует расчётное ядро сетки бронирований:
// генерацию слотов рабочего дня, календарь закрытых дней, раскладку
// занятости по ячейкам, состояние интерактивного выделения и проверку
// кандидата на конфликты. Все функции чистые: пакет не ходит в БД и
// не знает про HTTP.
package schedule

import (
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	"github.com/SkyCrew-app/reservation-service/pkg/types"
)

// Slot одна временная колонка сетки, производная от настроек рабочего дня.
// Никогда не сохраняется; пересоздается при смене даты или настроек.
type Slot struct {
	Label types.TimeString
	Start time.Time
	End   time.Time
}

// GenerateSlots строит упорядоченную последовательность слотов на дату.
// Шаг сетки равен настроенной длительности слота. Возвращает пустую
// последовательность, если настройки не загружены или некорректны -
// вызывающие трактуют это как состояние загрузки, а не как ошибку.
func GenerateSlots(date time.Time, settings *domain.BusinessSettings) []Slot {
	if !settings.IsComplete() {
		return nil
	}

	step := time.Duration(settings.SlotDuration()) * time.Minute

	dayStart, err := settings.ReservationStartTime.At(date)
	if err != nil {
		return nil
	}
	dayEnd, err := settings.ReservationEndTime.At(date)
	if err != nil {
		return nil
	}

	slots := make([]Slot, 0, int(dayEnd.Sub(dayStart)/step))
	for cur := dayStart; !cur.Add(step).After(dayEnd); cur = cur.Add(step) {
		slots = append(slots, Slot{
			Label: types.NewTimeString(cur),
			Start: cur,
			End:   cur.Add(step),
		})
	}

	return slots
}
