package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key int

// KeyTx is the context key under which the transactional repo is carried.
const KeyTx key = iota

// DBRepo is the minimal repository surface the middleware needs.
type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DBRepo
}

// TxMiddlewareHTTP places the repository into the request context so that
// handlers can open transactions via TxExecute.
func TxMiddlewareHTTP(repo DBRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a store transaction. Every repository call made
// with the callback's context joins the same transaction.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("failed to find transaction repo in context")
	}
	return t.DbRepo.WithTx(ctx, cb)
}
