package schedule

import (
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	"github.com/SkyCrew-app/reservation-service/pkg/types"
)

// CellState классификация одной ячейки сетки (ресурс x слот)
type CellState uint8

const (
	// CellFree слот свободен и доступен для выделения
	CellFree CellState = iota
	// CellOccupied первый слот бронирования; Span указывает, сколько
	// последовательных слотов объединяется в одну визуальную ячейку
	CellOccupied
	// CellConsumed слот поглощён предшествующей ячейкой Occupied,
	// отдельно не рисуется и не выделяется
	CellConsumed
	// CellOutOfHours слот вне рабочего окна дня
	CellOutOfHours
)

// String реализует fmt.Stringer для логов и сообщений ошибок
func (s CellState) String() string {
	switch s {
	case CellFree:
		return "free"
	case CellOccupied:
		return "occupied"
	case CellConsumed:
		return "consumed"
	case CellOutOfHours:
		return "out_of_hours"
	default:
		return "unknown"
	}
}

// Cell одна ячейка сетки занятости. Производное значение, никогда
// не сохраняется.
type Cell struct {
	State         CellState
	ReservationID int64 // заполнено для Occupied и Consumed
	Span          int   // > 0 только для головной ячейки Occupied
}

// Grid матрица занятости ресурс x слот на один день
type Grid struct {
	Resources []domain.Aircraft
	Slots     []Slot

	cells     [][]Cell
	rowIndex  map[int64]int
	slotIndex map[types.TimeString]int
}

// Resolve раскладывает бронирования по ячейкам сетки.
// Для каждой пары (ресурс, слот) в порядке слотов:
//   - слот вне рабочего окна -> OutOfHours;
//   - слот, на который претендует бронирование (start <= slotStart && end > slotStart,
//     полуоткрытый интервал) -> Occupied с длиной span = ceil(длительность/шаг),
//     последующие span-1 слотов помечаются Consumed;
//   - иначе -> Free.
//
// При аномальных данных (пересекающиеся бронирования одного ресурса)
// побеждает первое совпадение в порядке обхода - сетка не падает.
// Чистая функция: одинаковые входы дают одинаковую сетку.
func Resolve(
	resources []domain.Aircraft,
	slots []Slot,
	reservations []*domain.Reservation,
	settings *domain.BusinessSettings,
	date time.Time,
) *Grid {
	grid := &Grid{
		Resources: resources,
		Slots:     slots,
		cells:     make([][]Cell, len(resources)),
		rowIndex:  make(map[int64]int, len(resources)),
		slotIndex: make(map[types.TimeString]int, len(slots)),
	}

	for i, slot := range slots {
		grid.slotIndex[slot.Label] = i
	}

	step := time.Duration(settings.SlotDuration()) * time.Minute

	dayStart, dayEnd, hoursKnown := businessWindow(settings, date)

	for ri, resource := range resources {
		grid.rowIndex[resource.ID] = ri
		row := make([]Cell, len(slots))

		consumed := 0
		var consumedBy int64

		for si, slot := range slots {
			if consumed > 0 {
				row[si] = Cell{State: CellConsumed, ReservationID: consumedBy}
				consumed--
				continue
			}

			if hoursKnown && (slot.Start.Before(dayStart) || !slot.Start.Before(dayEnd)) {
				row[si] = Cell{State: CellOutOfHours}
				continue
			}

			claimed := false
			for _, res := range reservations {
				if res.ResourceID != resource.ID || !res.IsActive() {
					continue
				}
				if !res.ClaimsSlot(slot.Start) {
					continue
				}

				span := spanLength(res.Duration(), step)
				row[si] = Cell{State: CellOccupied, ReservationID: res.ID, Span: span}
				consumed = span - 1
				consumedBy = res.ID
				claimed = true
				break
			}

			if !claimed {
				row[si] = Cell{State: CellFree}
			}
		}

		grid.cells[ri] = row
	}

	return grid
}

// spanLength количество слотов, которые визуально занимает бронирование
func spanLength(duration, step time.Duration) int {
	if step <= 0 {
		return 1
	}
	span := int((duration + step - 1) / step)
	if span < 1 {
		span = 1
	}
	return span
}

func businessWindow(settings *domain.BusinessSettings, date time.Time) (start, end time.Time, ok bool) {
	if !settings.IsComplete() {
		return time.Time{}, time.Time{}, false
	}
	start, err := settings.ReservationStartTime.At(date)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = settings.ReservationEndTime.At(date)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Cell возвращает ячейку по ID ресурса и индексу слота
func (g *Grid) Cell(resourceID int64, slotIdx int) (Cell, bool) {
	ri, ok := g.rowIndex[resourceID]
	if !ok || slotIdx < 0 || slotIdx >= len(g.Slots) {
		return Cell{}, false
	}
	return g.cells[ri][slotIdx], true
}

// CellByLabel возвращает ячейку по ID ресурса и подписи слота
func (g *Grid) CellByLabel(resourceID int64, label types.TimeString) (Cell, bool) {
	si, ok := g.slotIndex[label]
	if !ok {
		return Cell{}, false
	}
	return g.Cell(resourceID, si)
}

// SlotIndex возвращает индекс слота по подписи
func (g *Grid) SlotIndex(label types.TimeString) (int, bool) {
	si, ok := g.slotIndex[label]
	return si, ok
}

// HasResource возвращает true, если ресурс присутствует в сетке
func (g *Grid) HasResource(resourceID int64) bool {
	_, ok := g.rowIndex[resourceID]
	return ok
}

// Row возвращает строку ячеек ресурса (в порядке слотов)
func (g *Grid) Row(resourceID int64) ([]Cell, bool) {
	ri, ok := g.rowIndex[resourceID]
	if !ok {
		return nil, false
	}
	return g.cells[ri], true
}
