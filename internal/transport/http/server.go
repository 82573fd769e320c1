// HTTP wiring for the arcade backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Connect endpoints: create, state, move, AI move, target preview, reset.
//   - Coin flip and shut-the-box endpoints.
//   - Aggregate stats endpoint for the charts.
//   - Pushes applied updates into the live feed.

package http

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"gamebox/internal/arcade"
	"gamebox/internal/bot"
	"gamebox/internal/coinflip"
	"gamebox/internal/config"
	"gamebox/internal/connect"
	"gamebox/internal/shutbox"
	"gamebox/internal/stats"
)

// Feed pushes applied updates to live watchers. *websocket.Hub satisfies it.
type Feed interface {
	PushState(gameID string, kind arcade.Kind, payload any)
	PushStats(snap stats.Snapshot)
}

// Server bundles the router with the session manager and stats recorder.
type Server struct {
	r        *chi.Mux
	manager  *arcade.Manager
	recorder *stats.Recorder
	feed     Feed
	cfg      *config.Config
}

// New constructs a Server, installs middleware, and registers routes. The
// feed and ws handler may be nil when no live feed is mounted.
func New(m *arcade.Manager, rec *stats.Recorder, feed Feed, ws http.HandlerFunc, cfg *config.Config) *Server {
	s := &Server{r: chi.NewRouter(), manager: m, recorder: rec, feed: feed, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(requestLogger)                   // structured request log
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsMiddleware(cfg.AllowedOrigins))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"gamebox","endpoints":["/health","/api/connect","/api/coinflip","/api/shutbox","/api/stats","/ws"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/api", func(api chi.Router) {
		api.Get("/stats", s.handleStats)

		api.Route("/connect", func(r chi.Router) {
			r.Get("/strategies", s.handleStrategies)
			r.Post("/new", s.handleConnectNew)
			r.Get("/{id}", s.handleState(arcade.KindConnect))
			r.Post("/{id}/move", s.handleConnectMove)
			r.Post("/{id}/ai", s.handleConnectAI)
			r.Get("/{id}/target", s.handleConnectTarget)
			r.Post("/{id}/reset", s.handleReset(arcade.KindConnect))
		})

		api.Route("/coinflip", func(r chi.Router) {
			r.Post("/new", s.handleCoinflipNew)
			r.Get("/{id}", s.handleState(arcade.KindCoinflip))
			r.Post("/{id}/flip", s.handleFlip)
			r.Post("/{id}/reset", s.handleReset(arcade.KindCoinflip))
		})

		api.Route("/shutbox", func(r chi.Router) {
			r.Post("/new", s.handleShutboxNew)
			r.Get("/{id}", s.handleState(arcade.KindShutbox))
			r.Post("/{id}/roll", s.handleRoll)
			r.Post("/{id}/shut", s.handleShut)
			r.Post("/{id}/reset", s.handleReset(arcade.KindShutbox))
		})
	})

	if ws != nil {
		s.r.Get("/ws", ws)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger emits one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("reqId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// corsMiddleware echoes origins from the allowed list. An empty list
// allows any origin; requests without an Origin header pass through.
func corsMiddleware(allowed []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if !originAllowed(allowed, origin) {
					log.Warn().Str("origin", origin).Msg("origin not in allowed list")
					http.Error(w, `{"error":"origin_not_allowed"}`, http.StatusForbidden)
					return
				}
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(allowed []string, origin string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, o := range allowed {
		if o == origin {
			return true
		}
	}
	return false
}

// ----------------------------- helpers --------------------------------------

// session resolves {id} to a live session of the expected kind, writing a
// 404 when it is missing or of another kind.
func (s *Server) session(w http.ResponseWriter, r *http.Request, kind arcade.Kind) (*arcade.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, ok := s.manager.Get(id)
	if !ok || sess.Kind != kind {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

// notify pushes the applied update and refreshed stats to the live feed.
func (s *Server) notify(sess *arcade.Session, payload any) {
	if s.feed == nil {
		return
	}
	s.feed.PushState(sess.ID, sess.Kind, payload)
	s.feed.PushStats(s.recorder.Snapshot())
}

func (s *Server) handleState(kind arcade.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.session(w, r, kind)
		if !ok {
			return
		}
		_ = json.NewEncoder(w).Encode(sess.HandleState())
	}
}

func (s *Server) handleReset(kind arcade.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.session(w, r, kind)
		if !ok {
			return
		}
		payload := sess.HandleReset(s.recorder)
		s.notify(sess, payload)
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// ------------------------------ CONNECT -------------------------------------

type connectNewRes struct {
	GameID string        `json:"gameId"`
	State  connect.State `json:"state"`
}

func (s *Server) handleConnectNew(w http.ResponseWriter, r *http.Request) {
	var cfg connect.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if cfg.Width > s.cfg.MaxBoardWidth || cfg.Height > s.cfg.MaxBoardHeight {
		http.Error(w, `{"error":"board_too_large"}`, http.StatusBadRequest)
		return
	}
	if len(cfg.Players) > s.cfg.MaxPlayers {
		http.Error(w, `{"error":"too_many_players"}`, http.StatusBadRequest)
		return
	}

	g, err := connect.New(cfg)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	sess := s.manager.CreateConnect(g)
	s.recorder.ConnectStarted()

	_ = json.NewEncoder(w).Encode(connectNewRes{GameID: sess.ID, State: g.State()})
}

type moveReq struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s *Server) handleConnectMove(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, arcade.KindConnect)
	if !ok {
		return
	}
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	st, err := sess.HandleMove(s.recorder, req.Row, req.Col)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusConflict)
		return
	}
	s.notify(sess, st)
	_ = json.NewEncoder(w).Encode(st)
}

func (s *Server) handleConnectAI(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, arcade.KindConnect)
	if !ok {
		return
	}

	st, err := sess.HandleAIMove(s.recorder)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusConflict)
		return
	}
	s.notify(sess, st)
	_ = json.NewEncoder(w).Encode(st)
}

type targetRes struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Legal bool `json:"legal"`
}

func (s *Server) handleConnectTarget(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, arcade.KindConnect)
	if !ok {
		return
	}
	row, errRow := strconv.Atoi(r.URL.Query().Get("row"))
	col, errCol := strconv.Atoi(r.URL.Query().Get("col"))
	if errRow != nil || errCol != nil {
		http.Error(w, `{"error":"bad_coordinates"}`, http.StatusBadRequest)
		return
	}

	target, legal, err := sess.HandleTarget(row, col)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(targetRes{Row: target.Row, Col: target.Col, Legal: legal})
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	ids := bot.Strategies()
	sort.Strings(ids)
	_ = json.NewEncoder(w).Encode(map[string][]string{"strategies": ids})
}

// ------------------------------ COINFLIP ------------------------------------

type coinflipNewRes struct {
	GameID string            `json:"gameId"`
	State  coinflip.Snapshot `json:"state"`
}

func (s *Server) handleCoinflipNew(w http.ResponseWriter, r *http.Request) {
	g := coinflip.New()
	sess := s.manager.CreateCoinflip(g)
	_ = json.NewEncoder(w).Encode(coinflipNewRes{GameID: sess.ID, State: g.Snapshot()})
}

func (s *Server) handleFlip(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, arcade.KindCoinflip)
	if !ok {
		return
	}

	snap, err := sess.HandleFlip(s.recorder)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusConflict)
		return
	}
	s.notify(sess, snap)
	_ = json.NewEncoder(w).Encode(snap)
}

// ------------------------------ SHUTBOX -------------------------------------

type shutboxNewRes struct {
	GameID string           `json:"gameId"`
	State  shutbox.Snapshot `json:"state"`
}

func (s *Server) handleShutboxNew(w http.ResponseWriter, r *http.Request) {
	g := shutbox.New()
	sess := s.manager.CreateShutbox(g)
	s.recorder.ShutboxStarted()
	_ = json.NewEncoder(w).Encode(shutboxNewRes{GameID: sess.ID, State: g.Snapshot()})
}

func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, arcade.KindShutbox)
	if !ok {
		return
	}

	snap, err := sess.HandleRoll(s.recorder)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusConflict)
		return
	}
	s.notify(sess, snap)
	_ = json.NewEncoder(w).Encode(snap)
}

type shutReq struct {
	Tiles []int `json:"tiles"`
}

func (s *Server) handleShut(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, arcade.KindShutbox)
	if !ok {
		return
	}
	var req shutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	snap, err := sess.HandleShut(s.recorder, req.Tiles)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusConflict)
		return
	}
	s.notify(sess, snap)
	_ = json.NewEncoder(w).Encode(snap)
}

// ------------------------------ STATS ---------------------------------------

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.recorder.Snapshot())
}
