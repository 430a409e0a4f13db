package get_schedule_grid

import (
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	"github.com/SkyCrew-app/reservation-service/internal/schedule"
	getScheduleGrid "github.com/SkyCrew-app/reservation-service/internal/usecase/get_schedule_grid"
)

// GridResponse HTTP response model сетки занятости
type GridResponse struct {
	Date  string `json:"date"`  // "2025-11-13"
	Epoch string `json:"epoch"` // идентификатор ответа для отбрасывания устаревших

	SettingsLoaded bool `json:"settingsLoaded"`

	Closed        bool   `json:"closed"`
	ClosedWeekday string `json:"closedWeekday,omitempty"`

	SlotDurationMinutes int               `json:"slotDurationMinutes,omitempty"`
	Slots               []SlotResponse    `json:"slots,omitempty"`
	Rows                []RowResponse     `json:"rows,omitempty"`
}

// SlotResponse один слот рабочего дня
type SlotResponse struct {
	Label string    `json:"label"` // "10:00"
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RowResponse строка сетки: воздушное судно и ячейки в порядке слотов
type RowResponse struct {
	ResourceID         int64          `json:"resourceId"`
	RegistrationNumber string         `json:"registrationNumber"`
	Cells              []CellResponse `json:"cells"`
}

// CellResponse одна ячейка сетки
type CellResponse struct {
	State         string `json:"state"` // free | occupied | consumed | out_of_hours
	ReservationID int64  `json:"reservationId,omitempty"`
	Span          int    `json:"span,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getScheduleGrid.Response) *GridResponse {
	out := &GridResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		Epoch:               resp.Epoch,
		SettingsLoaded:      resp.SettingsLoaded,
		Closed:              resp.Closed,
		ClosedWeekday:       resp.ClosedWeekday,
		SlotDurationMinutes: resp.SlotDurationMinutes,
	}

	if len(resp.Slots) > 0 {
		out.Slots = make([]SlotResponse, len(resp.Slots))
		for i, slot := range resp.Slots {
			out.Slots[i] = SlotResponse{
				Label: slot.Label.String(),
				Start: slot.Start,
				End:   slot.End,
			}
		}
	}

	if len(resp.Rows) > 0 {
		out.Rows = make([]RowResponse, len(resp.Rows))
		for i, row := range resp.Rows {
			out.Rows[i] = RowResponse{
				ResourceID:         row.Aircraft.ID,
				RegistrationNumber: row.Aircraft.RegistrationNumber,
				Cells:              fromCells(row.Cells),
			}
		}
	}

	return out
}

func fromCells(cells []schedule.Cell) []CellResponse {
	out := make([]CellResponse, len(cells))
	for i, c := range cells {
		out[i] = CellResponse{
			State:         c.State.String(),
			ReservationID: c.ReservationID,
			Span:          c.Span,
		}
	}
	return out
}
