package dbmetrics

import "context"

type executorKey struct{}

// WithExecutor кладёт executor (обычно активную транзакцию) в контекст
// Репозитории достают его через GetExecutor и выполняют запросы внутри транзакции
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, executor)
}

// GetExecutor возвращает executor из контекста или fallback, если транзакции нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey{}).(DBExecutor)
	return ok
}
