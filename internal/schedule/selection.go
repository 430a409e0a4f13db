package schedule

import (
	"github.com/SkyCrew-app/reservation-service/pkg/types"
)

// SelectionState состояние машины интерактивного выделения
type SelectionState uint8

const (
	// SelectionIdle выделения нет
	SelectionIdle SelectionState = iota
	// SelectionDragging выделение в процессе (кнопка зажата)
	SelectionDragging
)

// Candidate кандидат бронирования, произведённый завершённым выделением.
// Подписи слотов не упорядочены: конец может предшествовать началу,
// нормализация происходит при валидации.
type Candidate struct {
	ResourceID int64
	StartLabel types.TimeString
	EndLabel   types.TimeString
}

// Selection машина состояний drag-выделения: Idle -> Dragging ->
// {Committed | Cancelled} -> Idle. Чистый редьюсер, управляется только
// событиями указателя; существует исключительно во время активного
// выделения и сбрасывается при смене даты. Выделение одноресурсное:
// наведение на чужую строку игнорируется.
type Selection struct {
	state      SelectionState
	resourceID int64
	startLabel types.TimeString
	endLabel   types.TimeString
	hasEnd     bool
}

// State возвращает текущее состояние машины
func (s *Selection) State() SelectionState {
	return s.state
}

// PointerDown начинает выделение. Переход Idle -> Dragging происходит
// только над свободной ячейкой; нажатия над занятыми и нерабочими
// ячейками игнорируются.
func (s *Selection) PointerDown(resourceID int64, label types.TimeString, cell Cell) {
	if s.state != SelectionIdle || cell.State != CellFree {
		return
	}
	s.state = SelectionDragging
	s.resourceID = resourceID
	s.startLabel = label
	s.endLabel = ""
	s.hasEnd = false
}

// PointerEnter обновляет конец выделения при наведении на ячейку той же
// строки. Порядок относительно начала не проверяется - конец может быть
// раньше начала до нормализации.
func (s *Selection) PointerEnter(resourceID int64, label types.TimeString) {
	if s.state != SelectionDragging || resourceID != s.resourceID {
		return
	}
	s.endLabel = label
	s.hasEnd = true
}

// PointerUp завершает выделение. Полный кандидат (есть начало и конец)
// фиксируется и возвращается; незавершённое выделение молча отбрасывается.
// В обоих случаях машина возвращается в Idle - повторную попытку после
// отказа валидатора владеет вызывающая сторона.
func (s *Selection) PointerUp() (Candidate, bool) {
	committed := s.state == SelectionDragging && s.hasEnd
	candidate := Candidate{
		ResourceID: s.resourceID,
		StartLabel: s.startLabel,
		EndLabel:   s.endLabel,
	}

	s.Reset()

	if !committed {
		return Candidate{}, false
	}
	return candidate, true
}

// Reset сбрасывает машину в Idle (смена даты, размонтирование)
func (s *Selection) Reset() {
	*s = Selection{}
}
