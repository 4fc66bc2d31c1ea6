package handlers

import (
	"net/http"

	"github.com/grautech/leadpipe/internal/usecase"
)

type StageHandler struct {
	Pipeline *usecase.LoadPipelineUseCase
}

func NewStageHandler(pipeline *usecase.LoadPipelineUseCase) *StageHandler {
	return &StageHandler{Pipeline: pipeline}
}

// HandleList nunca falha: com o banco fora do ar, devolve o pipeline padrão.
func (h *StageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	registry := h.Pipeline.Execute(r.Context())
	writeJSON(w, http.StatusOK, registry.Stages())
}
