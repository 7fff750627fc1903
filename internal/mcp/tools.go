package mcp

import (
	"context"

	"github.com/jmadsen/voltduel/internal/match"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// activeSession is the singleton match session (one per stdio process).
var activeSession *MatchSession

// configFile is the path to the ruleset YAML file, set by main. Empty
// means the default ruleset.
var configFile string

// SetConfigFile sets the path to the ruleset YAML file.
func SetConfigFile(path string) {
	configFile = path
}

// RegisterTools adds all match tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startMatchTool(), handleStartMatch)
	s.AddTool(registerHitTool(), handleRegisterHit)
	s.AddTool(registerGoalTool(), handleRegisterGoal)
	s.AddTool(unlockAbilityTool(), handleUnlockAbility)
	s.AddTool(activateAbilityTool(), handleActivateAbility)
	s.AddTool(advanceTicksTool(), handleAdvanceTicks)
	s.AddTool(getMatchStateTool(), handleGetMatchState)
}

// --- Tool definitions ---

func startMatchTool() mcp.Tool {
	return mcp.NewTool("start_match",
		mcp.WithDescription("Start a new voltduel match with the configured ruleset. "+
			"Returns the initial state: both players at zero score and charge, all abilities locked. "+
			"Drive the match with register_hit, register_goal, unlock_ability, activate_ability, and advance_ticks."),
	)
}

func registerHitTool() mcp.Tool {
	return mcp.NewTool("register_hit",
		mcp.WithDescription("Register a successful paddle return for a player. Grants rally charge "+
			"per the charge sequence (the rally hit counter is shared, the charge goes to the hitter)."),
		mcp.WithString("player", mcp.Required(), mcp.Description("Which player returned the ball: \"A\" or \"B\"")),
	)
}

func registerGoalTool() mcp.Tool {
	return mcp.NewTool("register_goal",
		mcp.WithDescription("Register a goal. Resets the rally counter, updates the score, may trigger "+
			"an evolution phase or end the match. The conceding player serves next."),
		mcp.WithString("scorer", mcp.Required(), mcp.Description("Which player scored: \"A\" or \"B\"")),
	)
}

func unlockAbilityTool() mcp.Tool {
	return mcp.NewTool("unlock_ability",
		mcp.WithDescription("Spend charge to unlock an ability for a player. The response events show "+
			"either the unlock or a rejection with a reason (insufficient_charge, already_unlocked, ...)."),
		mcp.WithString("player", mcp.Required(), mcp.Description("Which player: \"A\" or \"B\"")),
		mcp.WithString("ability", mcp.Required(), mcp.Description("Ability name as listed in the state view")),
	)
}

func activateAbilityTool() mcp.Tool {
	return mcp.NewTool("activate_ability",
		mcp.WithDescription("Spend charge to activate an unlocked ability. Fails with a logged rejection "+
			"if the ability is locked, on cooldown, already active, or charge is short."),
		mcp.WithString("player", mcp.Required(), mcp.Description("Which player: \"A\" or \"B\"")),
		mcp.WithString("ability", mcp.Required(), mcp.Description("Ability name as listed in the state view")),
	)
}

func advanceTicksTool() mcp.Tool {
	return mcp.NewTool("advance_ticks",
		mcp.WithDescription("Advance the match clock by N ticks with no input. Ability effects expire, "+
			"cooldowns tick down, and chaos events fire on schedule."),
		mcp.WithNumber("ticks", mcp.Required(), mcp.Description("Number of ticks to advance (>= 1)")),
	)
}

func getMatchStateTool() mcp.Tool {
	return mcp.NewTool("get_match_state",
		mcp.WithDescription("Get the current match state and any events since the last tool call. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A match is already running. Only one match at a time is supported."), nil
	}

	sess, err := NewMatchSession(configFile, match.PlayerA)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start match: %v", err), nil
	}

	activeSession = sess
	return mcp.NewToolResultText(respondJSON(sess.CurrentState())), nil
}

func handleRegisterHit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}

	player, err := parsePlayer(request.GetString("player", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return finish(sess.RegisterHit(player))
}

func handleRegisterGoal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}

	scorer, err := parsePlayer(request.GetString("scorer", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return finish(sess.RegisterGoal(scorer))
}

func handleUnlockAbility(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}

	player, err := parsePlayer(request.GetString("player", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ability := request.GetString("ability", "")
	if ability == "" {
		return mcp.NewToolResultError("ability name is required"), nil
	}

	return finish(sess.Unlock(player, ability))
}

func handleActivateAbility(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}

	player, err := parsePlayer(request.GetString("player", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ability := request.GetString("ability", "")
	if ability == "" {
		return mcp.NewToolResultError("ability name is required"), nil
	}

	return finish(sess.Activate(player, ability))
}

func handleAdvanceTicks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}

	ticks := request.GetInt("ticks", 0)
	if ticks < 1 {
		return mcp.NewToolResultError("ticks must be >= 1"), nil
	}

	return finish(sess.AdvanceTicks(ticks))
}

func handleGetMatchState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}

	return finish(sess.CurrentState())
}

// finish renders a tool response and clears the session when the match
// has ended.
func finish(resp *ToolResponse) (*mcp.CallToolResult, error) {
	if resp.MatchOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
