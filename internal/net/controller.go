package net

import (
	"encoding/json"
	"net"
	"sync"

	"github.com/jmadsen/voltduel/internal/log"
	"github.com/jmadsen/voltduel/internal/match"
)

// PlayerConn wires one player's TCP connection into the match loop:
// inbound messages are pumped into a channel the loop drains each
// tick, outbound events and snapshots are written under a lock.
type PlayerConn struct {
	conn   net.Conn
	enc    *json.Encoder
	player match.PlayerID
	inbox  chan ClientMessage
	mu     sync.Mutex
}

// NewPlayerConn creates a connection wrapper and starts its read pump.
func NewPlayerConn(conn net.Conn, player match.PlayerID) *PlayerConn {
	pc := &PlayerConn{
		conn:   conn,
		enc:    json.NewEncoder(conn),
		player: player,
		inbox:  make(chan ClientMessage, 64),
	}
	go pc.readPump()
	return pc
}

// readPump decodes client messages until the connection drops.
func (pc *PlayerConn) readPump() {
	dec := json.NewDecoder(pc.conn)
	for {
		var msg ClientMessage
		if err := dec.Decode(&msg); err != nil {
			close(pc.inbox)
			return
		}
		pc.inbox <- msg
	}
}

// Drain returns all messages received since the last call.
func (pc *PlayerConn) Drain() []ClientMessage {
	var msgs []ClientMessage
	for {
		select {
		case msg, ok := <-pc.inbox:
			if !ok {
				return msgs
			}
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

// Send writes a server message to the client.
func (pc *PlayerConn) Send(msg ServerMessage) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.enc.Encode(msg)
}

// SendEvent forwards a match event.
func (pc *PlayerConn) SendEvent(e log.MatchEvent) error {
	return pc.Send(ServerMessage{Type: "event", Event: BuildEventView(e)})
}

// SendState sends a snapshot from this player's perspective.
func (pc *PlayerConn) SendState(m *match.Match) error {
	return pc.Send(ServerMessage{Type: "state", State: BuildStateView(m, pc.player)})
}

// BuildEventView converts a match event for the wire.
func BuildEventView(e log.MatchEvent) *EventView {
	return &EventView{
		Tick:    e.Tick,
		Player:  e.Player,
		Type:    e.Type.String(),
		Ability: e.Ability,
		Reason:  e.Reason,
		Value:   e.Value,
		Aux:     e.Aux,
		Details: e.Detail,
	}
}

// BuildStateView creates a StateView from the given player's
// perspective. Both sides' economies are public: there is no hidden
// information in the charge duel.
func BuildStateView(m *match.Match, player match.PlayerID) *StateView {
	sv := &StateView{
		You:       buildPlayerView(m, player),
		Opponent:  buildPlayerView(m, player.Opponent()),
		Tick:      int64(m.Tick),
		Phase:     m.Phases.Current(),
		RallyHits: m.Rally.HitCount,
		YouServe:  m.Server == player,
		Over:      m.Over,
		Result:    m.Result,
	}
	for _, e := range m.Chaos.Active() {
		sv.Chaos = append(sv.Chaos, ChaosView{
			Name:          e.Spec.Name,
			Kind:          e.Spec.Kind.String(),
			ExpiresAtTick: int64(e.ExpiresAtTick),
		})
	}
	return sv
}

func buildPlayerView(m *match.Match, id match.PlayerID) PlayerView {
	p := m.Player(id)
	pv := PlayerView{
		Score:  p.Score,
		Charge: p.Charge,
	}
	for _, a := range m.Config.Abilities.Abilities() {
		st := p.State(a.ID)
		av := AbilityView{
			Name:           a.Name,
			Tier:           int(a.Tier),
			UnlockCost:     a.UnlockCost,
			ActivationCost: a.ActivationCost,
			State:          st.Tag.String(),
		}
		switch st.Tag {
		case match.StateOnCooldown:
			av.ReadyAtTick = int64(st.ReadyAtTick)
		case match.StateActive:
			av.ExpiresAtTick = int64(st.ExpiresAtTick)
		}
		pv.Abilities = append(pv.Abilities, av)
	}
	return pv
}
