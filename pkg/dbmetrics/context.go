package dbmetrics

import "context"

type ctxKey struct{}

// WithExecutor guarda o executor da transação ativa no contexto.
// Os repositórios usam GetExecutor para participar da transação
// sem conhecer o transaction manager.
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, executor)
}

// GetExecutor devolve o executor do contexto, ou o executor padrão
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(ctxKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction indica se há transação ativa no contexto
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(DBExecutor)
	return ok
}
