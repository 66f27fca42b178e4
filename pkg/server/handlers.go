package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/apexaero/aerosim-service-go/log"
	"github.com/apexaero/aerosim-service-go/pkg/analysis"
	"github.com/apexaero/aerosim-service-go/pkg/model"
	"github.com/apexaero/aerosim-service-go/pkg/track"
	"github.com/apexaero/aerosim-service-go/version"
)

type simulateRequest struct {
	Track    string          `json:"track"`
	Config   model.AeroSetup `json:"config"`
	RaceMode bool            `json:"raceMode"`
}

type compareRequest struct {
	Track         string `json:"track"`
	PredictedTime string `json:"predictedTime"`
}

type simulateResponse struct {
	Track   string                   `json:"track"`
	Result  model.SimulationResult   `json:"result"`
	Metrics model.PerformanceMetrics `json:"metrics"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func (s *Server) handleTracks(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.registry.All())
}

func (s *Server) handleSimulateLap(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	trackInfo, err := s.registry.Get(req.Track)
	if err != nil {
		s.writeError(w, err)
		return
	}
	params := req.Config.CarParameters()
	if err := params.Validate(); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, simulateResponse{
		Track:   trackInfo.Key,
		Result:  s.sim.SimulateLap(params, trackInfo, req.RaceMode),
		Metrics: analysis.EstimatePerformance(req.Config, trackInfo),
	})
}

func (s *Server) handleSimulateCircuit(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Config.CarParameters().Validate(); err != nil {
		s.writeError(w, err)
		return
	}
	result, err := s.analyzer.AnalyzeCircuit(req.Track, req.Config)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePredictPerformance(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	trackInfo, err := s.registry.Get(req.Track)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Config.CarParameters().Validate(); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, analysis.EstimatePerformance(req.Config, trackInfo))
}

func (s *Server) handleCompareBaseline(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	result, err := s.analyzer.CompareWithBaseline(req.Track, req.PredictedTime)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) decode(r *http.Request, target any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.l.Error("writing response", log.ErrorField(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, track.ErrTrackNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidConfig):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.l.Error("request failed", log.ErrorField(err))
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
