package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net"
	"net/http"

	"github.com/coder/websocket"
	"github.com/jmadsen/voltduel/internal/match"
)

//go:embed static
var staticFiles embed.FS

// AbilityInfo is the JSON representation of an ability for the
// /api/abilities endpoint.
type AbilityInfo struct {
	Name           string `json:"name"`
	Tier           int    `json:"tier"`
	UnlockCost     int    `json:"unlockCost"`
	ActivationCost int    `json:"activationCost"`
	CooldownTicks  int64  `json:"cooldownTicks"`
	EffectTicks    int64  `json:"effectTicks"`
	Effect         string `json:"effect"`
}

// ChaosInfo is the JSON representation of a chaos event for the
// /api/chaos endpoint.
type ChaosInfo struct {
	Name          string  `json:"name"`
	Kind          string  `json:"kind"`
	MinPhase      int     `json:"minPhase"`
	PeriodTicks   int64   `json:"periodTicks,omitempty"`
	Probability   float64 `json:"probability,omitempty"`
	DurationTicks int64   `json:"durationTicks"`
}

// PhaseInfo is the JSON representation of an evolution phase for the
// /api/phases endpoint.
type PhaseInfo struct {
	Index     int `json:"index"`
	Threshold int `json:"threshold"`
	Bonus     int `json:"bonus"`
}

// Server is the voltduel web UI server. It serves the catalog API and
// bridges browser WebSocket connections to a TCP match server.
type Server struct {
	cfg *match.Config
	mux *http.ServeMux
}

// NewServer creates a new web server. If configFile is empty the
// default ruleset is used.
func NewServer(configFile string) (*Server, error) {
	cfg := match.DefaultConfig()
	if configFile != "" {
		loaded, err := match.LoadConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	s := &Server{
		cfg: cfg,
		mux: http.NewServeMux(),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	// Embedded static files
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	// Static CSS/JS
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// API endpoints
	s.mux.HandleFunc("GET /api/abilities", s.handleAbilities)
	s.mux.HandleFunc("GET /api/chaos", s.handleChaos)
	s.mux.HandleFunc("GET /api/phases", s.handlePhases)

	// WebSocket proxy
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleAbilities(w http.ResponseWriter, r *http.Request) {
	var abilities []AbilityInfo
	for _, a := range s.cfg.Abilities.Abilities() {
		abilities = append(abilities, AbilityInfo{
			Name:           a.Name,
			Tier:           int(a.Tier),
			UnlockCost:     a.UnlockCost,
			ActivationCost: a.ActivationCost,
			CooldownTicks:  int64(a.CooldownTicks),
			EffectTicks:    int64(a.EffectTicks),
			Effect:         a.Effect.String(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(abilities)
}

func (s *Server) handleChaos(w http.ResponseWriter, r *http.Request) {
	var events []ChaosInfo
	for _, spec := range s.cfg.Chaos.Specs() {
		events = append(events, ChaosInfo{
			Name:          spec.Name,
			Kind:          spec.Kind.String(),
			MinPhase:      spec.MinPhaseIndex,
			PeriodTicks:   int64(spec.PeriodTicks),
			Probability:   spec.ProbabilityPerTick,
			DurationTicks: int64(spec.DurationTicks),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}

func (s *Server) handlePhases(w http.ResponseWriter, r *http.Request) {
	var phases []PhaseInfo
	for i, p := range s.cfg.Phases {
		phases = append(phases, PhaseInfo{
			Index:     i,
			Threshold: p.Threshold,
			Bonus:     p.Bonus,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(phases)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	// Read initial connect message from browser
	_, connectData, err := wsConn.Read(ctx)
	if err != nil {
		log.Printf("WebSocket read connect: %v", err)
		return
	}

	var connectMsg struct {
		Type string `json:"type"`
		Addr string `json:"addr"`
	}
	if err := json.Unmarshal(connectData, &connectMsg); err != nil || connectMsg.Type != "connect" {
		wsConn.Close(websocket.StatusPolicyViolation, "expected connect message")
		return
	}

	// Open TCP connection to the match server
	tcpConn, err := net.Dial("tcp", connectMsg.Addr)
	if err != nil {
		errMsg, _ := json.Marshal(map[string]string{
			"type":   "error",
			"result": fmt.Sprintf("Could not connect to match server at %s: %v", connectMsg.Addr, err),
		})
		wsConn.Write(ctx, websocket.MessageText, errMsg)
		wsConn.Close(websocket.StatusNormalClosure, "connection failed")
		return
	}
	defer tcpConn.Close()

	// Send join message over TCP
	joinMsg, _ := json.Marshal(map[string]string{"type": "join"})
	joinMsg = append(joinMsg, '\n')
	if _, err := tcpConn.Write(joinMsg); err != nil {
		log.Printf("TCP write join: %v", err)
		return
	}

	done := make(chan struct{})

	// TCP → WebSocket (server messages to browser)
	go func() {
		defer close(done)
		dec := json.NewDecoder(tcpConn)
		for {
			var msg json.RawMessage
			if err := dec.Decode(&msg); err != nil {
				if err != io.EOF {
					log.Printf("TCP read error: %v", err)
				}
				return
			}
			if err := wsConn.Write(ctx, websocket.MessageText, msg); err != nil {
				log.Printf("WebSocket write error: %v", err)
				return
			}
		}
	}()

	// WebSocket → TCP (browser commands to server)
	go func() {
		for {
			_, data, err := wsConn.Read(ctx)
			if err != nil {
				return
			}
			data = append(data, '\n')
			if _, err := tcpConn.Write(data); err != nil {
				log.Printf("TCP write error: %v", err)
				return
			}
		}
	}()

	<-done
	wsConn.Close(websocket.StatusNormalClosure, "match ended")
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
