package schedule

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/SkyCrew-app/reservation-service/internal/domain"
)

// Список закрытых дней исторически хранится локализованными названиями
// ("Samedi", "Dimanche"), иногда с диакритикой и в произвольном регистре.
// Сопоставление делается один раз при нормализации: имя сводится к
// целочисленному дню недели через таблицу, а не сравнивается строками
// в каждой проверке.

var weekdayByName = map[string]time.Weekday{
	// французские названия
	"dimanche": time.Sunday,
	"lundi":    time.Monday,
	"mardi":    time.Tuesday,
	"mercredi": time.Wednesday,
	"jeudi":    time.Thursday,
	"vendredi": time.Friday,
	"samedi":   time.Saturday,
	// английские названия
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// frenchWeekdayNames подписи дней недели для отображения в сетке
var frenchWeekdayNames = [7]string{
	"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi",
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeDayName приводит название дня к канонической форме:
// Unicode-декомпозиция, удаление диакритики, нижний регистр.
func NormalizeDayName(name string) string {
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// ResolveWeekday сопоставляет название (или числовой индекс 0-6, где
// 0 - воскресенье) дню недели. Возвращает false для нераспознанных имён.
func ResolveWeekday(name string) (time.Weekday, bool) {
	normalized := NormalizeDayName(name)

	if wd, ok := weekdayByName[normalized]; ok {
		return wd, true
	}

	if n, err := strconv.Atoi(normalized); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n), true
	}

	return 0, false
}

// WeekdayLabel возвращает французскую подпись дня недели
func WeekdayLabel(wd time.Weekday) string {
	return frenchWeekdayNames[int(wd)%7]
}

// IsClosed возвращает true, если день недели даты входит в список закрытых
// дней. Нераспознанные записи списка молча пропускаются - опечатка в
// настройках не должна закрывать клуб. Чистая функция.
func IsClosed(date time.Time, settings *domain.BusinessSettings) bool {
	if settings == nil {
		return false
	}

	weekday := date.Weekday()
	for _, name := range settings.ClosureDays {
		if wd, ok := ResolveWeekday(name); ok && wd == weekday {
			return true
		}
	}
	return false
}
