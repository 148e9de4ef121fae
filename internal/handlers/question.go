package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/askwell/apiserver/internal/services"
	"github.com/askwell/apiserver/types"
	"github.com/go-chi/chi/v5"
)

// QuestionHandler provides HTTP handlers for questions.
type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// QuestionRouter registers question routes on the given router.
func QuestionRouter(r chi.Router, questionService *services.QuestionService) {
	handler := NewQuestionHandler(questionService)

	r.Post("/create", handler.Create)
	r.Get("/all", handler.GetAll)
	r.Get("/all/{userId}", handler.GetAllByUser)
	r.Put("/edit/{questionId}", handler.Edit)
	r.Delete("/delete/{questionId}", handler.Delete)
}

type QuestionRequest struct {
	Content string `json:"content"`
}

type QuestionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type QuestionDetailsResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "GEN-001", Message: "Invalid request body"})
		return
	}

	question, err := h.questionService.Create(r.Context(), accessToken(r), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, QuestionResponse{ID: question.UUID, Status: "QUESTION CREATED"})
}

func (h *QuestionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.GetAll(r.Context(), accessToken(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questionDetails(questions))
}

func (h *QuestionHandler) GetAllByUser(w http.ResponseWriter, r *http.Request) {
	userUUID := chi.URLParam(r, "userId")
	questions, err := h.questionService.GetAllByUser(r.Context(), accessToken(r), userUUID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questionDetails(questions))
}

func (h *QuestionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "GEN-001", Message: "Invalid request body"})
		return
	}

	questionUUID := chi.URLParam(r, "questionId")
	question, err := h.questionService.Edit(r.Context(), accessToken(r), questionUUID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, QuestionResponse{ID: question.UUID, Status: "QUESTION EDITED"})
}

func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	questionUUID := chi.URLParam(r, "questionId")
	question, err := h.questionService.Delete(r.Context(), accessToken(r), questionUUID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, QuestionResponse{ID: question.UUID, Status: "QUESTION DELETED"})
}

func questionDetails(questions []types.Question) []QuestionDetailsResponse {
	details := make([]QuestionDetailsResponse, 0, len(questions))
	for _, question := range questions {
		details = append(details, QuestionDetailsResponse{
			ID:      question.UUID,
			Content: question.Content,
		})
	}
	return details
}
