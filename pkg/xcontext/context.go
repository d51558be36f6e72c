package xcontext

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/localboost/backend/config"
	"github.com/localboost/backend/pkg/authenticator"
	"github.com/localboost/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	httpRequestKey  struct{}
	httpWriterKey   struct{}
	dbKey           struct{}
	dbTxKey         struct{}
	configsKey      struct{}
	loggerKey       struct{}
	requestUserKey  struct{}
	tokenEngineKey  struct{}
	sessionStoreKey struct{}
	errorKey        struct{}
	responseKey     struct{}
)

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	r, ok := ctx.Value(httpRequestKey{}).(*http.Request)
	if !ok {
		return nil
	}

	return r
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	w, ok := ctx.Value(httpWriterKey{}).(http.ResponseWriter)
	if !ok {
		return nil
	}

	return w
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the transaction began by WithDBTransaction if any, otherwise the
// root database connection.
func DB(ctx context.Context) *gorm.DB {
	if state, ok := ctx.Value(dbTxKey{}).(*txState); ok && !state.done {
		return state.tx
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		return nil
	}

	return db
}

type txState struct {
	tx   *gorm.DB
	done bool
}

// WithDBTransaction begins a transaction and replaces the returned value of
// DB() until the transaction is committed or rolled back.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTxKey{}, &txState{tx: DB(ctx).Begin()})
}

// WithCommitDBTransaction commits the current transaction if it exists and is
// not finished yet.
func WithCommitDBTransaction(ctx context.Context) {
	if state, ok := ctx.Value(dbTxKey{}).(*txState); ok && !state.done {
		state.tx.Commit()
		state.done = true
	}
}

// WithRollbackDBTransaction rollbacks the current transaction. It is a no-op
// after WithCommitDBTransaction, so it is safe to defer right after the
// transaction begins.
func WithRollbackDBTransaction(ctx context.Context) {
	if state, ok := ctx.Value(dbTxKey{}).(*txState); ok && !state.done {
		state.tx.Rollback()
		state.done = true
	}
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		return config.Configs{}
	}

	return cfg
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		return logger.NewLogger(logger.SILENCE)
	}

	return l
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestUserKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	id, ok := ctx.Value(requestUserKey{}).(string)
	if !ok {
		return ""
	}

	return id
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine {
	engine, ok := ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine)
	if !ok {
		return nil
	}

	return engine
}

func WithSessionStore(ctx context.Context, store sessions.Store) context.Context {
	return context.WithValue(ctx, sessionStoreKey{}, store)
}

func SessionStore(ctx context.Context) sessions.Store {
	store, ok := ctx.Value(sessionStoreKey{}).(sessions.Store)
	if !ok {
		return nil
	}

	return store
}

type errorBox struct {
	err error
}

type responseBox struct {
	resp any
}

// WithErrorBox and WithResponseBox install mutable slots that the router uses
// to carry the handler result to After middlewares and Closers.
func WithErrorBox(ctx context.Context) context.Context {
	return context.WithValue(ctx, errorKey{}, &errorBox{})
}

func SetError(ctx context.Context, err error) {
	if box, ok := ctx.Value(errorKey{}).(*errorBox); ok {
		box.err = err
	}
}

func Error(ctx context.Context) error {
	if box, ok := ctx.Value(errorKey{}).(*errorBox); ok {
		return box.err
	}

	return nil
}

func WithResponseBox(ctx context.Context) context.Context {
	return context.WithValue(ctx, responseKey{}, &responseBox{})
}

func SetResponse(ctx context.Context, resp any) {
	if box, ok := ctx.Value(responseKey{}).(*responseBox); ok {
		box.resp = resp
	}
}

func Response(ctx context.Context) any {
	if box, ok := ctx.Value(responseKey{}).(*responseBox); ok {
		return box.resp
	}

	return nil
}
