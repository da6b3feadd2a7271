package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/TaskManager/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// UserHandler — обработчик HTTP-запросов для работы с пользователями.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: uc, logger: logger}
}

type createUserRequest struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Age       int    `json:"age"`
}

type updateUserRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Age       int    `json:"age"`
}

// AllUsers — возвращает всех пользователей.
func (h *UserHandler) AllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUseCase.List(r.Context())
	if err != nil {
		respondOperationError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, users, h.logger)
}

// UserByID — возвращает пользователя по ID из пути.
func (h *UserHandler) UserByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, "user_id must be an integer", h.logger)
		return
	}

	user, err := h.userUseCase.GetByID(r.Context(), id)
	if err != nil {
		respondOperationError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// CreateUser — создаёт нового пользователя.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}
	if req.Username == "" {
		respondWithDetail(w, http.StatusUnprocessableEntity, "username is required", h.logger)
		return
	}

	err := h.userUseCase.Create(r.Context(), usecase.CreateUserInput{
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Age:       req.Age,
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

// UpdateUser — обновляет пользователя, user_id берётся из строки запроса.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "user_id")
	if err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}

	err = h.userUseCase.Update(r.Context(), id, usecase.UpdateUserInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Age:       req.Age,
	})
	if err != nil {
		respondOperationError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, transactionResponse{
		StatusCode:  http.StatusOK,
		Transaction: "User update is successful!",
	}, h.logger)
}

// DeleteUser — удаляет пользователя вместе с его задачами.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "user_id")
	if err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}

	if _, err := h.userUseCase.Delete(r.Context(), id); err != nil {
		respondOperationError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, transactionResponse{
		StatusCode:  http.StatusOK,
		Transaction: "User and his tasks deletion is successful!",
	}, h.logger)
}

// TasksByUserID — возвращает все задачи пользователя, user_id берётся из строки запроса.
func (h *UserHandler) TasksByUserID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "user_id")
	if err != nil {
		respondWithDetail(w, http.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}

	tasks, err := h.userUseCase.TasksByUser(r.Context(), id)
	if err != nil {
		respondOperationError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, tasks, h.logger)
}
