package story

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/storygen/backend/internal/models"
)

type Handler struct {
	service *Service
	store   *Store
}

func NewHandler(service *Service, store *Store) *Handler {
	return &Handler{service: service, store: store}
}

func (h *Handler) GenerateStory(w http.ResponseWriter, r *http.Request) {
	var req models.StoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	requestID := uuid.NewString()
	log.Printf("Story %s: generate age=%q genre=%q language=%q", requestID, req.AgeRange, req.Genre, req.Language)

	resp, err := h.service.Generate(r.Context(), requestID, req)
	if err != nil {
		log.Printf("Story %s: %v", requestID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.store.InsertFeedback(req); err != nil {
		log.Printf("Feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save feedback"})
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// ExportFeedback streams the feedback table as a CSV download for BI use.
func (h *Handler) ExportFeedback(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="feedback_data.csv"`)

	if err := h.store.ExportFeedbackCSV(w); err != nil {
		// Headers may already be written; all we can do is log.
		log.Printf("Feedback export: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
