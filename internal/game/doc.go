// Package game implements the scoring rules for each dart game variant.
//
// Every variant is an Engine. The turn controller records a throw on the
// current player and hands it to HandleThrow, which mutates the players and
// reports the outcome as a ThrowResult. HandleThrowUndo reverses the most
// recent throw exactly, so a controller can offer unlimited undo within a
// turn.
//
// # Basic Usage
//
//	engine, err := game.NewEngine(game.NewOptions(game.X01, game.WithCountTo(301)))
//	if err != nil {
//	    return err
//	}
//	p := game.NewPlayer(1, "Alice")
//	engine.InitializePlayer(p)
//
//	t := darts.NewThrow(darts.Triple, 20)
//	p.Throws = append(p.Throws, t)
//	result := engine.HandleThrow(p, t, players)
//
// # Variant State
//
// Player.State holds the per-variant state (X01State, KillerState,
// TargetState, EliminationState). Effects on other players are recorded in
// the thrower's TurnLog so that undo never has to recompute them.
//
// Engines keep no per-game state of their own beyond Options and the round
// passed to optional hooks. They are not safe for concurrent use.
package game
