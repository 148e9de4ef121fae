package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/askwell/apiserver/internal/services"
	"github.com/go-chi/chi/v5"
)

// AnswerHandler provides HTTP handlers for answers.
type AnswerHandler struct {
	answerService *services.AnswerService
}

func NewAnswerHandler(answerService *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// AnswerRouter registers the answer routes that live under /answer.
// Answer creation is registered separately under the question route.
func AnswerRouter(r chi.Router, answerService *services.AnswerService) {
	handler := NewAnswerHandler(answerService)

	r.Put("/edit/{answerId}", handler.Edit)
	r.Delete("/delete/{answerId}", handler.Delete)
	r.Get("/all/{questionId}", handler.GetAllToQuestion)
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AnswerDetailsResponse struct {
	ID              string `json:"id"`
	QuestionContent string `json:"question_content"`
	AnswerContent   string `json:"answer_content"`
}

func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "GEN-001", Message: "Invalid request body"})
		return
	}

	questionUUID := chi.URLParam(r, "questionId")
	answer, err := h.answerService.Create(r.Context(), accessToken(r), questionUUID, req.Answer)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AnswerResponse{ID: answer.UUID, Status: "ANSWER CREATED"})
}

func (h *AnswerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: "GEN-001", Message: "Invalid request body"})
		return
	}

	answerUUID := chi.URLParam(r, "answerId")
	answer, err := h.answerService.Edit(r.Context(), accessToken(r), answerUUID, req.Answer)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AnswerResponse{ID: answer.UUID, Status: "ANSWER EDITED"})
}

func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	answerUUID := chi.URLParam(r, "answerId")
	answer, err := h.answerService.Delete(r.Context(), accessToken(r), answerUUID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AnswerResponse{ID: answer.UUID, Status: "ANSWER DELETED"})
}

func (h *AnswerHandler) GetAllToQuestion(w http.ResponseWriter, r *http.Request) {
	questionUUID := chi.URLParam(r, "questionId")
	question, answers, err := h.answerService.GetAllToQuestion(r.Context(), accessToken(r), questionUUID)
	if err != nil {
		writeError(w, err)
		return
	}

	details := make([]AnswerDetailsResponse, 0, len(answers))
	for _, answer := range answers {
		details = append(details, AnswerDetailsResponse{
			ID:              answer.UUID,
			QuestionContent: question.Content,
			AnswerContent:   answer.Content,
		})
	}
	writeJSON(w, http.StatusOK, details)
}
