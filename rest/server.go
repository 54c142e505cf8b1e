package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/foresight-io/foresight/engine"
	"github.com/foresight-io/foresight/graph"
	"github.com/foresight-io/foresight/history"
	"github.com/foresight-io/foresight/logger"
	"github.com/gorilla/mux"
)

type Server struct {
	http.Server
	Port       int
	engine     *engine.Engine
	graph      *graph.InMemoryGraph
	historyLog *history.Log
}

func NewServer(httpPort int, eng *engine.Engine, g *graph.InMemoryGraph, historyLog *history.Log) (*Server, error) {
	s := &Server{
		Server: http.Server{
			Addr:        fmt.Sprintf(":%d", httpPort),
			IdleTimeout: 2 * time.Second,
		},
		engine:     eng,
		graph:      g,
		historyLog: historyLog,
		Port:       httpPort,
	}

	router := mux.NewRouter()
	router.HandleFunc("/predictions", s.HandleGeneratePredictions).Methods(http.MethodPost)
	router.HandleFunc("/predictions/{id}/feedback", s.HandlePredictionFeedback).Methods(http.MethodPost)
	router.HandleFunc("/workflow/suggest", s.HandleSuggestWorkflow).Methods(http.MethodPost)
	router.HandleFunc("/behavior/{userId}", s.HandleLearnFromBehavior).Methods(http.MethodPost)
	router.HandleFunc("/graph", s.HandleReplaceGraph).Methods(http.MethodPost)
	router.HandleFunc("/history", s.HandleGetHistory).Methods(http.MethodGet)

	router.Use(loggingMiddleware)
	s.Handler = router
	return s, nil
}

func (s *Server) Start() error {
	logger.Info(fmt.Sprintf("starting http server on port %d", s.Port))
	if err := s.ListenAndServe(); err != nil {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	logger.Info("stopping http server")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := s.Shutdown(ctx)
	if err != nil {
		logger.Error("error shutting down http server")
	}
	return nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
