package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grautech/leadpipe/internal/entity"
	"github.com/grautech/leadpipe/internal/usecase"
)

type TagHandler struct {
	TagRepo usecase.TagRepositoryInterface
}

func NewTagHandler(tagRepo usecase.TagRepositoryInterface) *TagHandler {
	return &TagHandler{TagRepo: tagRepo}
}

func (h *TagHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tags, err := h.TagRepo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if tags == nil {
		tags = []entity.Tag{}
	}
	writeJSON(w, http.StatusOK, tags)
}

type TagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (h *TagHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	tag, err := h.TagRepo.FindOrCreate(r.Context(), req.Name, req.Color)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

func (h *TagHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	tag := &entity.Tag{ID: chi.URLParam(r, "id"), Name: req.Name, Color: req.Color}
	if err := h.TagRepo.Update(r.Context(), tag); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tag)
}

func (h *TagHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TagRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
