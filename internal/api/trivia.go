package api

import (
	"encoding/json"
	"net/http"

	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/metrics"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/services"
)

// TriviaBoardHandler handles GET /api/v1/trivia/board
//
// Deals a fresh board: five random categories, five questions each,
// ordered easiest to hardest within a column.
func TriviaBoardHandler(svc *services.TriviaService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		board, err := svc.GetBoard(r.Context(), rc)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		metricsReg.TriviaBoardsServed.Inc()
		respondWithSuccess(w, http.StatusOK, board)
	}
}

// TriviaBonusHandler handles GET /api/v1/trivia/bonus
func TriviaBonusHandler(svc *services.TriviaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		question, err := svc.GetBonusQuestion(r.Context(), rc)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, question)
	}
}

// CreateQuestionHandler handles POST /api/v1/trivia/questions
func CreateQuestionHandler(svc *services.TriviaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		var req requests.QuestionUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		question, err := svc.Create(r.Context(), rc, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, question)
	}
}

// UpdateQuestionHandler handles PUT /api/v1/trivia/questions/{question_id}
func UpdateQuestionHandler(svc *services.TriviaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		id, ok := uintParam(r, "question_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid question id")
			return
		}

		var req requests.QuestionUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		question, err := svc.Update(r.Context(), rc, id, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, question)
	}
}

// DeleteQuestionHandler handles DELETE /api/v1/trivia/questions/{question_id}
func DeleteQuestionHandler(svc *services.TriviaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		id, ok := uintParam(r, "question_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid question id")
			return
		}

		if err := svc.Delete(r.Context(), rc, id); err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithMessage(w, http.StatusOK, "Question deleted")
	}
}
