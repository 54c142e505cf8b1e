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

type suggestWorkflowRequest struct {
	StartEntityIds []string              `json:"startEntityIds"`
	Goal           string                `json:"goal"`
	Options        model.WorkflowOptions `json:"options"`
}

func (s *Server) HandleSuggestWorkflow(w http.ResponseWriter, r *http.Request) {
	var req suggestWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed workflow request")
		return
	}
	defer r.Body.Close()
	plan, err := s.engine.SuggestOptimalWorkflow(r.Context(), req.StartEntityIds, req.Goal, req.Options)
	if err != nil {
		var invalid model.InvalidInputError
		if errors.As(err, &invalid) {
			respondWithError(w, http.StatusBadRequest, invalid.Error())
			return
		}
		logger.Error("error suggesting workflow", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error suggesting workflow")
		return
	}
	respondWithJSON(w, http.StatusOK, plan)
}

func (s *Server) HandleLearnFromBehavior(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userId, ok := vars["userId"]
	if !ok {
		respondWithError(w, http.StatusBadRequest, "missing user id")
		return
	}
	var behaviorData []map[string]any
	if err := json.NewDecoder(r.Body).Decode(&behaviorData); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed behavior data")
		return
	}
	defer r.Body.Close()
	result, err := s.engine.LearnFromBehavior(r.Context(), userId, behaviorData)
	if err != nil {
		logger.Error("error learning from behavior", zap.String("userId", userId), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "error learning from behavior")
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

type graphSnapshotRequest struct {
	Entities      []model.WorkflowEntity       `json:"entities"`
	Relationships []model.WorkflowRelationship `json:"relationships"`
}

func (s *Server) HandleReplaceGraph(w http.ResponseWriter, r *http.Request) {
	var req graphSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed graph snapshot")
		return
	}
	defer r.Body.Close()
	s.graph.Replace(req.Entities, req.Relationships)
	respondWithJSON(w, http.StatusOK, map[string]any{
		"entities":      len(req.Entities),
		"relationships": len(req.Relationships),
	})
}
