package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/SkyCrew-app/reservation-service/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, повторите позже"

// RateLimit ограничивает частоту запросов token bucket'ом.
// Лимит общий на инстанс: защита от шторма перерисовок сетки,
// а не честное распределение между пользователями.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
