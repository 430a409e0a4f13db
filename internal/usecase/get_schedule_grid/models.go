package get_schedule_grid

import (
	"time"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
	"github.com/SkyCrew-app/reservation-service/internal/schedule"
)

// Request модель запроса сетки бронирований на дату
type Request struct {
	UserID int64     // ID члена клуба (для логирования, не влияет на результат)
	Date   time.Time // Дата сетки (без времени)
}

// Response модель ответа с сеткой занятости на дату.
//
// Epoch - уникальный идентификатор ответа: клиент, сменивший дату до
// прихода ответа, отбрасывает ответы с чужим Epoch и не применяет
// устаревшее состояние.
type Response struct {
	Date  time.Time
	Epoch string

	// SettingsLoaded false означает состояние загрузки: настройки клуба
	// ещё не созданы, сетки нет, но это не ошибка
	SettingsLoaded bool

	// Closed true, если дата приходится на закрытый день клуба
	Closed        bool
	ClosedWeekday string // подпись дня недели для сообщения о закрытии

	SlotDurationMinutes int
	Slots               []schedule.Slot
	Rows                []ResourceRow
}

// ResourceRow строка сетки: воздушное судно и его ячейки в порядке слотов
type ResourceRow struct {
	Aircraft domain.Aircraft
	Cells    []schedule.Cell
}
