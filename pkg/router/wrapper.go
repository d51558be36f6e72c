package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/xcontext"
)

var validate = validator.New()

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	befores := append([]MiddlewareFunc{}, router.befores...)
	afters := append([]MiddlewareFunc{}, router.afters...)
	closers := append([]CloserFunc{}, router.closers...)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := xcontext.WithHTTPRequest(router.ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithErrorBox(ctx)
		ctx = xcontext.WithResponseBox(ctx)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		if r.Method != method {
			xcontext.SetError(ctx, errorx.New(errorx.NotSupportedMethod, "Not supported method %s", r.Method))
			return
		}

		for _, m := range befores {
			newCtx, err := m(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}

		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = bindQuery(r, &req)
		case http.MethodPost:
			err = json.NewDecoder(r.Body).Decode(&req)
			if errors.Is(err, io.EOF) {
				// An empty body is an empty request.
				err = nil
			}
		}
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
			return
		}

		if err := validate.Struct(&req); err != nil {
			xcontext.Logger(ctx).Debugf("Invalid request: %v", err)
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Invalid request"))
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			xcontext.SetError(ctx, err)
			return
		}

		xcontext.SetResponse(ctx, resp)

		for _, m := range afters {
			newCtx, err := m(ctx)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			if newCtx != nil {
				ctx = newCtx
			}
		}
	}
}
