package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jmadsen/voltduel/internal/log"
	"github.com/jmadsen/voltduel/internal/match"
	vnet "github.com/jmadsen/voltduel/internal/net"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events    []vnet.EventView `json:"events"`
	State     *vnet.StateView  `json:"state,omitempty"`
	Tick      int64            `json:"tick"`
	MatchOver bool             `json:"match_over"`
	Winner    string           `json:"winner,omitempty"`
	Result    string           `json:"result,omitempty"`
}

// MatchSession holds a single MCP-driven match. The engine is tick
// stepped, so tools queue inputs and advance the clock synchronously
// rather than blocking on decisions.
type MatchSession struct {
	mu      sync.Mutex
	match   *match.Match
	logger  *log.MemoryLogger
	lastSeq int
	viewer  match.PlayerID
}

// NewMatchSession starts a match from the given config file (empty
// means the default ruleset). The viewer player determines which side
// tool responses are rendered from.
func NewMatchSession(configFile string, viewer match.PlayerID) (*MatchSession, error) {
	cfg := match.DefaultConfig()
	if configFile != "" {
		loaded, err := match.LoadConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	logger := log.NewMemoryLogger()
	return &MatchSession{
		match:  match.NewMatch(cfg, logger),
		logger: logger,
		viewer: viewer,
	}, nil
}

// drainEvents returns event views logged since the last drain.
func (s *MatchSession) drainEvents() []vnet.EventView {
	events := s.logger.Events()
	views := make([]vnet.EventView, 0, len(events)-s.lastSeq)
	for _, ev := range events[s.lastSeq:] {
		views = append(views, *vnet.BuildEventView(ev))
	}
	s.lastSeq = len(events)
	return views
}

// respond advances the clock by the given number of ticks and builds
// the standard tool response. Callers hold s.mu.
func (s *MatchSession) respond(ticks int) *ToolResponse {
	for i := 0; i < ticks && !s.match.Over; i++ {
		s.match.Advance()
	}

	resp := &ToolResponse{
		Events: s.drainEvents(),
		State:  vnet.BuildStateView(s.match, s.viewer),
		Tick:   int64(s.match.Tick),
	}
	if s.match.Over {
		resp.MatchOver = true
		resp.Winner = match.PlayerID(s.match.Winner).String()
		resp.Result = s.match.Result
	}
	return resp
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
