package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"uv-dashboard/models"
	services "uv-dashboard/service"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// GetState handles GET /v1/quiz
func (h *QuizHandler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.quizService.State())
}

// SelectAnswer handles POST /v1/quiz/answers with {"question": n, "points": p}
func (h *QuizHandler) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	var answer models.QuizAnswer
	if err := json.NewDecoder(r.Body).Decode(&answer); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid answer body")
		return
	}
	if err := h.quizService.Select(answer.QuestionIndex, answer.PointValue); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.quizService.State())
}

// Submit handles POST /v1/quiz/submit
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.quizService.Submit()
	if errors.Is(err, services.ErrIncompleteQuiz) {
		writeError(w, http.StatusUnprocessableEntity, services.QUIZ_INCOMPLETE_PROMPT)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Retake handles POST /v1/quiz/retake
func (h *QuizHandler) Retake(w http.ResponseWriter, r *http.Request) {
	h.quizService.Retake()
	writeJSON(w, http.StatusOK, h.quizService.State())
}
