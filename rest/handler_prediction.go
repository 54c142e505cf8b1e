package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foresight-io/foresight/logger"
	"github.com/foresight-io/foresight/model"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type predictionRequest struct {
	Context model.WorkflowContext   `json:"context"`
	Options model.PredictionOptions `json:"options"`
}

func (s *Server) HandleGeneratePredictions(w http.ResponseWriter, r *http.Request) {
	var req predictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed prediction request")
		return
	}
	defer r.Body.Close()
	bundle, err := s.engine.GeneratePredictions(r.Context(), req.Context, req.Options)
	if err != nil {
		logger.Error("error generating predictions", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error generating predictions")
		return
	}
	respondWithJSON(w, http.StatusOK, bundle)
}

type feedbackRequest struct {
	ActualAction   string `json:"actualAction"`
	ActualEntityId string `json:"actualEntityId,omitempty"`
}

func (s *Server) HandlePredictionFeedback(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	predictionId, ok := vars["id"]
	if !ok {
		respondWithError(w, http.StatusBadRequest, "missing prediction id")
		return
	}
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed feedback request")
		return
	}
	defer r.Body.Close()
	result, err := s.engine.UpdatePredictionAccuracy(r.Context(), predictionId, req.ActualAction, req.ActualEntityId)
	if err != nil {
		var notFound model.NotFoundError
		if errors.As(err, &notFound) {
			respondWithError(w, http.StatusNotFound, notFound.Error())
			return
		}
		logger.Error("error updating prediction accuracy", zap.String("predictionId", predictionId), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error updating prediction accuracy")
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (s *Server) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.historyLog.Entries())
}
