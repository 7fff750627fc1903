package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strings"
)

// Client connects to a match server and provides a terminal REPL.
// The REPL doubles as a stand-in physics feed: "hit" and "goal"
// commands play the role of the collision collaborator.
type Client struct {
	conn      net.Conn
	player    string
	wantState chan struct{}
}

// Connect dials a server, joins, and runs the REPL.
func Connect(ctx context.Context, addr string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: "join"}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	fmt.Println("Connected! Waiting for match to start...")

	client := &Client{conn: conn}
	return client.RunREPL(ctx)
}

// RunREPL prints server messages and forwards typed commands until the
// match ends or the connection drops.
func (c *Client) RunREPL(ctx context.Context) error {
	enc := json.NewEncoder(c.conn)
	done := make(chan error, 1)
	if c.wantState == nil {
		c.wantState = make(chan struct{}, 1)
	}

	go func() {
		done <- c.readLoop()
	}()

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			msg, ok := parseCommand(scanner.Text())
			if !ok {
				printHelp()
				continue
			}
			if msg.Type == "state" {
				select {
				case c.wantState <- struct{}{}:
				default:
				}
			}
			if err := enc.Encode(msg); err != nil {
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// readLoop renders server messages until match_over or disconnect.
func (c *Client) readLoop() error {
	dec := json.NewDecoder(c.conn)
	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case "welcome":
			c.player = msg.Player
			fmt.Printf("You are player %s (session %s). Type 'help' for commands.\n", msg.Player, msg.Session)

		case "event":
			c.renderEvent(msg.Event)

		case "state":
			// Snapshots arrive continuously; only render requested ones
			// to keep the event stream readable.
			select {
			case <-c.wantState:
				RenderState(msg.State)
			default:
			}

		case "match_over":
			fmt.Println()
			fmt.Println("═══════════════════════════════════")
			fmt.Println("          MATCH OVER")
			fmt.Println("═══════════════════════════════════")
			fmt.Println(msg.Result)
			fmt.Println("═══════════════════════════════════")
			return nil
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	// Format like the TextLogger.
	kind := ev.Type
	for len(kind) < 16 {
		kind += " "
	}
	fmt.Printf("t%-6d %s| %s\n", ev.Tick, kind, ev.Details)
}

// RenderState prints a compact two-sided economy board.
func RenderState(sv *StateView) {
	if sv == nil {
		return
	}
	fmt.Println()
	fmt.Printf("╔═══ t%d  phase %d  rally %d ═══\n", sv.Tick, sv.Phase+1, sv.RallyHits)
	fmt.Printf("║ YOU  score %2d  charge %4d", sv.You.Score, sv.You.Charge)
	if sv.YouServe {
		fmt.Printf("  (serving)")
	}
	fmt.Println()
	for _, a := range sv.You.Abilities {
		fmt.Printf("║   T%d %-20s %s", a.Tier, a.Name, a.State)
		switch a.State {
		case "OnCooldown":
			fmt.Printf(" (ready t%d)", a.ReadyAtTick)
		case "Active":
			fmt.Printf(" (until t%d)", a.ExpiresAtTick)
		case "Locked":
			fmt.Printf(" (unlock %d)", a.UnlockCost)
		}
		fmt.Println()
	}
	fmt.Printf("║ FOE  score %2d  charge %4d\n", sv.Opponent.Score, sv.Opponent.Charge)
	for _, ch := range sv.Chaos {
		fmt.Printf("║ chaos: %s until t%d\n", ch.Name, ch.ExpiresAtTick)
	}
	fmt.Println("╚═══")
}

// parseCommand maps a REPL line to a client message.
func parseCommand(line string) (ClientMessage, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ClientMessage{}, false
	}
	switch fields[0] {
	case "hit", "h":
		return ClientMessage{Type: "hit"}, true
	case "goal", "g":
		return ClientMessage{Type: "goal"}, true
	case "unlock", "u":
		if len(fields) < 2 {
			return ClientMessage{}, false
		}
		return ClientMessage{Type: "unlock", Ability: strings.Join(fields[1:], " ")}, true
	case "activate", "a":
		if len(fields) < 2 {
			return ClientMessage{}, false
		}
		return ClientMessage{Type: "activate", Ability: strings.Join(fields[1:], " ")}, true
	case "state", "s":
		return ClientMessage{Type: "state"}, true
	default:
		return ClientMessage{}, false
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  hit              register a paddle return (rally charge)")
	fmt.Println("  goal             register a goal you scored")
	fmt.Println("  unlock <name>    unlock an ability")
	fmt.Println("  activate <name>  activate an unlocked ability")
	fmt.Println("  state            request a state snapshot")
}
