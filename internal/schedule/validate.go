package schedule

import (
	"errors"
	"time"
)

var (
	// ErrUnknownResource возвращается, когда ресурс кандидата отсутствует в сетке
	ErrUnknownResource = errors.New("schedule: resource is not in the grid")

	// ErrUnknownSlot возвращается, когда подпись слота кандидата не найдена в сетке
	ErrUnknownSlot = errors.New("schedule: slot label is not in the grid")

	// ErrZeroDuration возвращается для кандидата нулевой или отрицательной длительности
	ErrZeroDuration = errors.New("schedule: candidate duration must be positive")

	// ErrSlotConflict возвращается, когда интервал кандидата задевает занятый
	// или нерабочий слот
	ErrSlotConflict = errors.New("schedule: candidate overlaps an occupied or out-of-hours slot")
)

// ValidatedInterval принятый кандидат: точные моменты времени (не подписи
// слотов) для передачи внешнему приёмнику мутаций и расчётная длительность
// полёта в часах для отображения.
type ValidatedInterval struct {
	ResourceID           int64
	Start                time.Time
	End                  time.Time
	EstimatedFlightHours float64
}

// Validate проверяет кандидата выделения против сетки занятости.
// Подписи слотов переводятся в моменты времени (конец - это начало
// конечного слота, полуоткрытый интервал), порядок нормализуется.
//
// Проверка исключительно консультативная: она даёт мгновенную обратную
// связь в интерфейсе, но не защищает от гонки двух клиентов -
// авторитетная проверка выполняется на стороне мутации в сериализуемой
// транзакции.
func Validate(c Candidate, grid *Grid) (*ValidatedInterval, error) {
	if !grid.HasResource(c.ResourceID) {
		return nil, ErrUnknownResource
	}

	si, ok := grid.SlotIndex(c.StartLabel)
	if !ok {
		return nil, ErrUnknownSlot
	}
	ei, ok := grid.SlotIndex(c.EndLabel)
	if !ok {
		return nil, ErrUnknownSlot
	}

	if si > ei {
		si, ei = ei, si
	}

	return ValidateInterval(c.ResourceID, grid.Slots[si].Start, grid.Slots[ei].Start, grid)
}

// ValidateInterval проверяет произвольный интервал [start, end) против
// сетки. Принимает точные моменты: начало и конец могут не совпадать
// с границами слотов - конфликт считается по пересечению с каждым слотом,
// который интервал задевает (отображение усекается до объемлющих слотов,
// моменты сохраняются точными).
func ValidateInterval(resourceID int64, start, end time.Time, grid *Grid) (*ValidatedInterval, error) {
	if !grid.HasResource(resourceID) {
		return nil, ErrUnknownResource
	}

	if end.Before(start) {
		start, end = end, start
	}

	duration := end.Sub(start)
	if duration <= 0 {
		return nil, ErrZeroDuration
	}

	// Интервал за пределами сетки целиком или частично - вне рабочих часов
	if len(grid.Slots) == 0 ||
		start.Before(grid.Slots[0].Start) ||
		end.After(grid.Slots[len(grid.Slots)-1].End) {
		return nil, ErrSlotConflict
	}

	row, _ := grid.Row(resourceID)
	for i, slot := range grid.Slots {
		if !slot.Start.Before(end) || !slot.End.After(start) {
			continue
		}
		if row[i].State != CellFree {
			return nil, ErrSlotConflict
		}
	}

	return &ValidatedInterval{
		ResourceID:           resourceID,
		Start:                start,
		End:                  end,
		EstimatedFlightHours: duration.Hours(),
	}, nil
}
