package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/TaskManager/internal/domain"
)

// transactionResponse — подтверждение успешной операции записи.
type transactionResponse struct {
	StatusCode  int    `json:"status_code"`
	Transaction string `json:"transaction"`
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondWithDetail — отправляет ответ с полем detail (404/422)
func respondWithDetail(w http.ResponseWriter, code int, detail string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"detail": detail}, logger)
}

// respondOperationError переводит ошибку операции в HTTP-ответ:
// отсутствие сущности — 404 с detail, всё остальное — 500
func respondOperationError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		respondWithDetail(w, http.StatusNotFound, nf.Detail, logger)
		return
	}
	logger.Error("operation failed", "error", err)
	respondWithError(w, http.StatusInternalServerError, "Internal Server Error", logger)
}

// parseIDParam разбирает целочисленный идентификатор из строки запроса
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New("missing " + name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// Welcome — корневой маршрут сервиса.
func Welcome(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Taskmanager"}, logger)
	}
}
