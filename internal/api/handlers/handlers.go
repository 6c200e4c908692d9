package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/talx-hub/point-ledger/internal/api/dto"
	"github.com/talx-hub/point-ledger/internal/model"
	"github.com/talx-hub/point-ledger/internal/model/history"
	"github.com/talx-hub/point-ledger/internal/model/point"
	"github.com/talx-hub/point-ledger/internal/model/reward"
	"github.com/talx-hub/point-ledger/internal/serviceerrs"
	"github.com/talx-hub/point-ledger/internal/utils/logger"
)

const maxBodyBytes = 1 << 20

type LedgerService interface {
	Charge(ctx context.Context,
		userID int64, amount point.Point, policy reward.Policy) (history.UserPoint, error)
	Use(ctx context.Context,
		userID int64, amount point.Point, policy reward.Policy) (history.UserPoint, error)
	GetBalance(ctx context.Context, userID int64) (history.UserPoint, error)
	GetHistories(ctx context.Context, userID int64) ([]history.Record, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPHandler serves every route of the router.
type HTTPHandler struct {
	*PointHandler
	*HealthHandler
}

func New(service LedgerService, storage Pinger, log *slog.Logger) *HTTPHandler {
	return &HTTPHandler{
		PointHandler:  NewPointHandler(service, log),
		HealthHandler: NewHealthHandler(storage, log),
	}
}

type PointHandler struct {
	service LedgerService
	logger  *slog.Logger
}

func NewPointHandler(service LedgerService, log *slog.Logger) *PointHandler {
	return &PointHandler{
		service: service,
		logger:  log,
	}
}

func (h *PointHandler) GetPoint(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	up, err := h.service.GetBalance(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, dto.NewUserPointResponse(up))
}

func (h *PointHandler) GetHistories(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	records, err := h.service.GetHistories(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, dto.NewHistoryResponses(records))
}

func (h *PointHandler) Charge(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.service.Charge)
}

func (h *PointHandler) Use(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.service.Use)
}

type mutation func(ctx context.Context,
	userID int64, amount point.Point, policy reward.Policy) (history.UserPoint, error)

func (h *PointHandler) mutate(w http.ResponseWriter, r *http.Request, fn mutation) {
	userID, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	amount, err := decodeAmount(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// nil policy: the ledger picks the default for the operation
	up, err := fn(r.Context(), userID, amount, nil)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, dto.NewUserPointResponse(up))
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: user id %q is not an integer", serviceerrs.ErrValidation, raw)
	}
	return id, nil
}

func decodeAmount(w http.ResponseWriter, r *http.Request) (point.Point, error) {
	var req dto.PointRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return point.Zero, fmt.Errorf("%w: malformed body: %w", serviceerrs.ErrValidation, err)
	}
	return req.Point()
}

func statusOf(err error) int {
	switch {
	case serviceerrs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, serviceerrs.ErrLockTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *PointHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelError,
			"request failed",
			slog.Any(model.KeyLoggerError, err),
		)
		message = "internal server error"
	}

	h.writeJSON(w, r, status, dto.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}

func (h *PointHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set(model.HeaderContentType, model.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to encode response",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func (h *PointHandler) log(r *http.Request) *slog.Logger {
	if l := logger.FromContextOrNil(r.Context()); l != nil {
		return l
	}
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}

type HealthHandler struct {
	storage Pinger
	logger  *slog.Logger
}

func NewHealthHandler(storage Pinger, log *slog.Logger) *HealthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &HealthHandler{
		storage: storage,
		logger:  log,
	}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), model.DefaultTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		log := logger.FromContextOrNil(r.Context())
		if log == nil {
			log = h.logger
		}
		log.LogAttrs(r.Context(),
			slog.LevelError,
			"storage is unreachable",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
