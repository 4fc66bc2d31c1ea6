package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/grautech/leadpipe/internal/infra/http/middleware"
	"github.com/grautech/leadpipe/internal/normalize"
	"github.com/grautech/leadpipe/internal/usecase"
)

// WebhookHandler recebe as submissões do Typebot. Upsert: lead repetido
// (mesmo email, senão mesmo telefone) é atualizado no lugar.
type WebhookHandler struct {
	Ingest      *usecase.IngestLeadUseCase
	rateLimiter *RateLimiter
}

func NewWebhookHandler(ingest *usecase.IngestLeadUseCase) *WebhookHandler {
	return &WebhookHandler{
		Ingest:      ingest,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min por IP
	}
}

type WebhookResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"leadId,omitempty"`
	IsNew   bool   `json:"isNew"`
}

type WebhookError struct {
	Error string `json:"error"`
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Preflight CORS do Typebot.
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, WebhookError{Error: "Too many requests"})
		return
	}

	var sub normalize.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, WebhookError{Error: "Invalid JSON"})
		return
	}

	output, err := h.Ingest.Execute(r.Context(), sub, usecase.IngestOptions{
		UpdateExisting: true,
		OriginLabel:    "Webhook",
	})
	if err != nil {
		log.Printf("❌ Erro ao processar webhook: %v", err)
		middleware.RecordLeadIngested("webhook", "error")
		writeJSON(w, http.StatusInternalServerError, WebhookError{Error: err.Error()})
		return
	}

	result := "updated"
	if output.IsNew {
		result = "created"
	}
	middleware.RecordLeadIngested("webhook", result)

	writeJSON(w, http.StatusOK, WebhookResponse{
		Success: true,
		LeadID:  output.LeadID,
		IsNew:   output.IsNew,
	})
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
