package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jmadsen/voltduel/internal/log"
	"github.com/jmadsen/voltduel/internal/match"
)

// DefaultTickRate is the simulation cadence in ticks per second.
const DefaultTickRate = 60

// Server hosts a match between the local player (A) and one TCP
// client (B). The host plays through an in-process pipe, the same
// protocol as the remote side.
type Server struct {
	ConfigFile string // optional YAML config; empty means builtin defaults
	Port       string
	TickRate   int
}

// Run starts the server, waits for a client to join, then runs the
// match loop to completion.
func (s *Server) Run(ctx context.Context) error {
	cfg := match.DefaultConfig()
	if s.ConfigFile != "" {
		var err error
		cfg, err = match.LoadConfig(s.ConfigFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Waiting for opponent on port %s...\n", s.Port)

	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()

	fmt.Printf("Opponent connected from %s\n", conn.RemoteAddr())

	// Read the joiner's handshake.
	dec := json.NewDecoder(conn)
	var joinMsg ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		return fmt.Errorf("read join message: %w", err)
	}
	if joinMsg.Type != "join" {
		return fmt.Errorf("expected join message, got %q", joinMsg.Type)
	}

	// Pipe for the host's local connection.
	hostConn, hostServerConn := net.Pipe()

	hostSide := NewPlayerConn(hostServerConn, match.PlayerA)
	joinerSide := NewPlayerConn(conn, match.PlayerB)

	session := uuid.NewString()
	_ = hostSide.Send(ServerMessage{Type: "welcome", Session: session, Player: match.PlayerA.String()})
	_ = joinerSide.Send(ServerMessage{Type: "welcome", Session: session, Player: match.PlayerB.String()})

	logger := log.NewTextLogger(os.Stdout)
	m := match.NewMatch(cfg, logger)

	errCh := make(chan error, 2)

	// Host's local REPL.
	go func() {
		client := &Client{conn: hostConn}
		errCh <- client.RunREPL(ctx)
	}()

	// Match loop.
	go func() {
		errCh <- s.runLoop(ctx, m, logger, hostSide, joinerSide)
	}()

	return <-errCh
}

// runLoop drives the match at the configured cadence until it ends or
// the context is cancelled.
func (s *Server) runLoop(ctx context.Context, m *match.Match, logger log.EventLogger, conns ...*PlayerConn) error {
	rate := s.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	lastSeq := 0
	const stateEvery = 30 // snapshot cadence in ticks

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		for _, pc := range conns {
			for _, msg := range pc.Drain() {
				s.applyMessage(m, pc, msg)
			}
		}

		m.Advance()

		// Forward events produced this tick.
		events := logger.Events()
		for _, e := range events[lastSeq:] {
			for _, pc := range conns {
				_ = pc.SendEvent(e)
			}
		}
		changed := len(events) > lastSeq
		lastSeq = len(events)

		if changed || int64(m.Tick)%stateEvery == 0 {
			for _, pc := range conns {
				_ = pc.SendState(m)
			}
		}

		if m.Over {
			for _, pc := range conns {
				_ = pc.Send(ServerMessage{
					Type:   "match_over",
					Winner: match.PlayerID(m.Winner).String(),
					Result: m.Result,
				})
			}
			return nil
		}
	}
}

// applyMessage queues one client message onto the match. Unknown
// ability names flow through as invalid IDs so the engine answers with
// a typed rejection instead of the server dropping the command.
func (s *Server) applyMessage(m *match.Match, pc *PlayerConn, msg ClientMessage) {
	switch msg.Type {
	case "hit":
		m.QueueHit(pc.player)
	case "goal":
		m.QueueGoal(pc.player)
	case "unlock", "activate":
		id := match.AbilityID(-1)
		if a, err := m.Config.Abilities.ByName(msg.Ability); err == nil {
			id = a.ID
		}
		cmdType := match.CommandUnlock
		if msg.Type == "activate" {
			cmdType = match.CommandActivate
		}
		m.QueueCommand(match.Command{Type: cmdType, Player: pc.player, Ability: id})
	case "state":
		_ = pc.SendState(m)
	}
}
