package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Flarenzy/simple-ipam/internal/domain"
)

const maxBodyBytes = 8 << 20

func encode[T any](w http.ResponseWriter, _ *http.Request, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	if r.Body == nil {
		return v, fmt.Errorf("decode json: empty body")
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// respond writes v and logs when the client could not be written to.
func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := encode(w, r, status, v); err != nil {
		a.logger.Error("cant respond to client",
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err),
		)
	}
}

// respondError maps err onto a status code. Server faults are logged with
// msg; caller mistakes only at debug.
func (a *API) respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, body := errorResponse(err)
	fields := []zap.Field{
		zap.String("request_id", RequestID(r.Context())),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		a.logger.Error(msg, fields...)
	} else {
		a.logger.Debug(msg, fields...)
	}
	a.respond(w, r, status, body)
}

func errorResponse(err error) (int, ErrorResponse) {
	kind := domain.KindOf(err)
	if domain.IsValidation(err) {
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: kind.String()}
	}
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound, ErrorResponse{Error: err.Error(), Kind: kind.String()}
	case domain.KindConflict:
		return http.StatusConflict, ErrorResponse{Error: err.Error(), Kind: kind.String()}
	case domain.KindUnauthorized:
		return http.StatusUnauthorized, ErrorResponse{Error: err.Error(), Kind: kind.String()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
	}
}

func badRequest(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Kind: domain.KindInvalidInput.String()}
}
