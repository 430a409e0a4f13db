package dbmetrics

import "context"

type ctxKey int

const executorKey ctxKey = iota

// WithExecutor кладет активный транзакционный исполнитель в контекст.
// Репозитории достают его через GetExecutor и таким образом участвуют
// в транзакции, не зная о ней явно.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey, exec)
}

// GetExecutor возвращает исполнитель из контекста или fallback,
// если активной транзакции нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorKey).(DBExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey).(DBExecutor)
	return ok
}
