package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/xcontext"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func httpStatus(err error) int {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		return http.StatusInternalServerError
	}

	switch errx.Code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.Unauthenticated, errorx.TokenExpired, errorx.StolenDetected:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.NotSupportedMethod:
		return http.StatusMethodNotAllowed
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.NotImplemented:
		return http.StatusNotImplemented
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func handleResponse() CloserFunc {
	return func(ctx context.Context) {
		w := xcontext.HTTPWriter(ctx)
		w.Header().Set("Content-Type", "application/json")

		if err := xcontext.Error(ctx); err != nil {
			w.WriteHeader(httpStatus(err))
			if werr := WriteJson(w, newErrorResponse(err)); werr != nil {
				xcontext.Logger(ctx).Errorf("cannot write the response: %v", werr)
			}
			return
		}

		if resp := xcontext.Response(ctx); resp != nil {
			if err := WriteJson(w, newResponse(resp)); err != nil {
				xcontext.Logger(ctx).Errorf("cannot write the response: %v", err)
			}
		}
	}
}

func WriteJson(w http.ResponseWriter, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
