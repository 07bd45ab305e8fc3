package handlers

import (
	"TodoKeeper/internal/config"
	"TodoKeeper/internal/model"
	"TodoKeeper/internal/service"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes - предел размера JSON-тела запроса.
const maxBodyBytes = 1 << 20

// ItemHandler обрабатывает CRUD-запросы к задачам.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// ItemDTO - представление задачи в API.
type ItemDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDone    bool   `json:"is_done"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ListResponse - ответ на GET /api/items.
type ListResponse struct {
	Items          []ItemDTO `json:"items"`
	TotalCount     int       `json:"total_count"`
	CompletedCount int       `json:"completed_count"`
}

// NameRequest - тело create/rename.
type NameRequest struct {
	Name string `json:"name"`
}

// ToggleRequest - необязательное тело toggle: состояние, которое видел клиент.
type ToggleRequest struct {
	IsDone *bool `json:"is_done,omitempty"`
}

func toDTO(it *model.Item) ItemDTO {
	return ItemDTO{
		ID:        it.ID,
		Name:      it.Name,
		IsDone:    it.IsDone,
		CreatedAt: it.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: it.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// List список задач со счётчиками
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.ItemService.ListItems(r.Context())
	if err != nil {
		h.writeError(w, "List", "", err)
		return
	}
	items := make([]ItemDTO, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, toDTO(&res.Items[i]))
	}
	writeJSON(w, http.StatusOK, ListResponse{
		Items:          items,
		TotalCount:     res.TotalCount,
		CompletedCount: res.CompletedCount,
	})
}

// Create создание задачи
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeBodyError(w, err)
		return
	}
	it, err := h.ItemService.AddItem(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, "Create", "", err)
		return
	}
	writeJSON(w, http.StatusCreated, toDTO(it))
}

// Get задача по id
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	it, err := h.ItemService.GetItem(r.Context(), id)
	if err != nil {
		h.writeError(w, "Get", id, err)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(it))
}

// Rename переименование задачи
func (h *ItemHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req NameRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Rename: invalid request body", "id", id, "error", err)
		writeBodyError(w, err)
		return
	}
	it, err := h.ItemService.RenameItem(r.Context(), id, req.Name)
	if err != nil {
		h.writeError(w, "Rename", id, err)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(it))
}

// Toggle переключение признака выполнения. Тело необязательно.
func (h *ItemHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req ToggleRequest
	if r.ContentLength != 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			h.Logger.Warnw("Toggle: invalid request body", "id", id, "error", err)
			writeBodyError(w, err)
			return
		}
	}
	it, err := h.ItemService.ToggleItem(r.Context(), id, req.IsDone)
	if err != nil {
		h.writeError(w, "Toggle", id, err)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(it))
}

// Delete удаление задачи; отсутствующий id - тоже 204
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ItemService.RemoveItem(r.Context(), id); err != nil {
		h.writeError(w, "Delete", id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError маппит ошибки сервиса в HTTP-коды.
func (h *ItemHandler) writeError(w http.ResponseWriter, op, id string, err error) {
	if ve := model.AsValidation(err); ve != nil {
		h.Logger.Infow(op+": validation failed", "id", id, "field", ve.Field, "error", ve.Message)
		http.Error(w, ve.Message, http.StatusBadRequest)
		return
	}
	switch {
	case errors.Is(err, model.ErrNotFound):
		http.Error(w, model.ErrNotFound.Error(), http.StatusNotFound)
	default:
		h.Logger.Errorw(op+": service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeBodyError: 413 для слишком большого тела, 400 для остального.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, "invalid request", http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
