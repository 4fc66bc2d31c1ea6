package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grautech/leadpipe/internal/entity"
	"github.com/grautech/leadpipe/internal/infra/http/middleware"
	"github.com/grautech/leadpipe/internal/usecase"
)

type LeadHandler struct {
	LeadRepo     usecase.LeadRepositoryInterface
	ActivityRepo usecase.ActivityRepositoryInterface
	Create       *usecase.CreateLeadUseCase
	Update       *usecase.UpdateLeadUseCase
	Duplicate    *usecase.DuplicateLeadUseCase
	AddNote      *usecase.AddNoteUseCase
	MoveStage    *usecase.MoveStageUseCase
}

func NewLeadHandler(
	leadRepo usecase.LeadRepositoryInterface,
	activityRepo usecase.ActivityRepositoryInterface,
	create *usecase.CreateLeadUseCase,
	update *usecase.UpdateLeadUseCase,
	duplicate *usecase.DuplicateLeadUseCase,
	addNote *usecase.AddNoteUseCase,
	moveStage *usecase.MoveStageUseCase,
) *LeadHandler {
	return &LeadHandler{
		LeadRepo:     leadRepo,
		ActivityRepo: activityRepo,
		Create:       create,
		Update:       update,
		Duplicate:    duplicate,
		AddNote:      addNote,
		MoveStage:    moveStage,
	}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.List(r.Context())
	if err != nil {
		log.Printf("❌ Erro ao listar leads: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	lead, err := h.Create.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	input.ID = chi.URLParam(r, "id")

	lead, err := h.Update.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.LeadRepo.Delete(r.Context(), id); err != nil {
		log.Printf("❌ Erro ao excluir lead %s: %v", id, err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) HandleDuplicate(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Duplicate.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

type AddNoteRequest struct {
	Content string `json:"content"`
}

func (h *LeadHandler) HandleAddNote(w http.ResponseWriter, r *http.Request) {
	var req AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	activity, err := h.AddNote.Execute(r.Context(), chi.URLParam(r, "id"), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, activity)
}

// HandleListActivities devolve a trilha de auditoria do lead, da mais
// antiga para a mais recente.
func (h *LeadHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.ActivityRepo.ListByLead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if activities == nil {
		activities = []entity.Activity{}
	}
	writeJSON(w, http.StatusOK, activities)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus serve o drag-and-drop. A resposta carrega OldStatus
// para o cliente desfazer a atualização otimista em caso de falha.
func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	output, err := h.MoveStage.Execute(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	if output.Moved {
		middleware.RecordStageTransition()
	}
	writeJSON(w, http.StatusOK, output)
}

type MoveRequest struct {
	Direction string `json:"direction"` // left | right
}

func (h *LeadHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	offset := 1
	if req.Direction == "left" {
		offset = -1
	}

	output, err := h.MoveStage.MoveAdjacent(r.Context(), chi.URLParam(r, "id"), offset)
	if err != nil {
		writeError(w, err)
		return
	}

	if output.Moved {
		middleware.RecordStageTransition()
	}
	writeJSON(w, http.StatusOK, output)
}

// writeError: erro de negócio vira 400, o resto é falha genérica (o
// chamador não distingue tipos de falha de store).
func writeError(w http.ResponseWriter, err error) {
	if usecase.IsDomainError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
