package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/TaskManager/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// TaskHandler — обработчик HTTP-запросов для работы с задачами.
type TaskHandler struct {
	taskUseCase usecase.TaskUseCase
	logger      *slog.Logger
}

// NewTaskHandler создаёт новый экземпляр TaskHandler.
func NewTaskHandler(uc usecase.TaskUseCase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{taskUseCase: uc, logger: logger}
}

type taskRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority int    `json:"priority"`
}

// AllTasks — возвращает все задачи.
func (h *TaskHandler) AllTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskUseCase.List(r.Context())
	if err != nil {
		respondOperationError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, tasks, h.logger)
}

// TaskByID — возвращает задачу по ID из пути.
func (h *TaskHandler) TaskByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)
	if err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, "task_id must be an integer", h.logger)
		return
	}

	task, err := h.taskUseCase.GetByID(r.Context(), id)
	if err != nil {
		respondOperationError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, task, h.logger)
}

// CreateTask — создаёт задачу для пользователя из строки запроса.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "user_id")
	if err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}
	if req.Title == "" {
		respondWithDetail(w, http.StatusUnprocessableEntity, "title is required", h.logger)
		return
	}

	err = h.taskUseCase.Create(r.Context(), userID, usecase.CreateTaskInput{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
	})
	if err != nil {
		respondOperationError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, transactionResponse{
		StatusCode:  http.StatusCreated,
		Transaction: "Successful",
	}, h.logger)
}

// UpdateTask — обновляет задачу, task_id берётся из строки запроса.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "task_id")
	if err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}

	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}
	if req.Title == "" {
		respondWithDetail(w, http.StatusUnprocessableEntity, "title is required", h.logger)
		return
	}

	err = h.taskUseCase.Update(r.Context(), id, usecase.UpdateTaskInput{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
	})
	if err != nil {
		respondOperationError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, transactionResponse{
		StatusCode:  http.StatusOK,
		Transaction: "Task update is successful!",
	}, h.logger)
}

// DeleteTask — удаляет задачу, task_id берётся из строки запроса.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "task_id")
	if err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}

	if err := h.taskUseCase.Delete(r.Context(), id); err != nil {
		respondOperationError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, transactionResponse{
		StatusCode:  http.StatusOK,
		Transaction: "Task deletion is successful!",
	}, h.logger)
}
