// Package server exposes the simulation core as an HTTP JSON API.
package server

import (
	"net/http"
	"time"

	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/apexaero/aerosim-service-go/log"
	"github.com/apexaero/aerosim-service-go/pkg/aero"
	"github.com/apexaero/aerosim-service-go/pkg/analysis"
	"github.com/apexaero/aerosim-service-go/pkg/simulation"
	"github.com/apexaero/aerosim-service-go/pkg/track"
)

type Server struct {
	registry *track.Registry
	analyzer *analysis.Analyzer
	sim      *simulation.Simulator
	phys     *aero.Physics
	l        *log.Logger
}

type Option func(*Server)

func WithAnalyzer(a *analysis.Analyzer) Option {
	return func(s *Server) { s.analyzer = a }
}

func WithSimulator(sim *simulation.Simulator) Option {
	return func(s *Server) { s.sim = sim }
}

func WithPhysics(phys *aero.Physics) Option {
	return func(s *Server) { s.phys = phys }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.l = l }
}

func NewServer(registry *track.Registry, opts ...Option) *Server {
	ret := &Server{registry: registry}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.phys == nil {
		ret.phys = aero.NewPhysics()
	}
	if ret.sim == nil {
		ret.sim = simulation.NewSimulator(simulation.WithPhysics(ret.phys))
	}
	if ret.analyzer == nil {
		ret.analyzer = analysis.NewAnalyzer(registry,
			analysis.WithPhysics(ret.phys),
			analysis.WithSimulator(ret.sim))
	}
	if ret.l == nil {
		ret.l = log.Default().Named("api")
	}
	return ret
}

// Handler assembles the route mux wrapped with request-id and access
// logging middleware, CORS and h2c.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/tracks", s.handleTracks)
	mux.HandleFunc("POST /api/simulate/lap", s.handleSimulateLap)
	mux.HandleFunc("POST /api/simulate/circuit", s.handleSimulateCircuit)
	mux.HandleFunc("POST /api/predict/performance", s.handlePredictPerformance)
	mux.HandleFunc("POST /api/compare/baseline", s.handleCompareBaseline)

	handler := s.accessLog(s.requestID(mux))
	return h2c.NewHandler(newCORS().Handler(handler), &http2.Server{})
}

func newCORS() *cors.Cors {
	// permissive profile so browser frontends can use the API directly
	return cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedHeaders: []string{"*"},
		MaxAge:         int(2 * time.Hour / time.Second),
	})
}
