// Package game implements the Texas Hold'em engine: seats and table state,
// blinds and betting actions, the per-street betting round, pot and side-pot
// settlement, the AI persona policy and the flow of a complete hand.
//
// # Basic Usage
//
// Build a State once per session and play hands against it:
//
//	rng := randutil.NewCrypto()
//	st := game.NewState(rng, 10, 20,
//	    game.NewSeat("Rock", game.Rock, 1000),
//	    game.NewSeat("You", game.Human, 1000),
//	)
//	deps := game.Deps{
//	    Policy: game.NewPolicy(randutil.NewCrypto()),
//	    Human:  provider, // supplies the human seat's actions
//	    Log:    func(line string) { fmt.Println(line) },
//	}
//	outcome, err := game.PlayHand(ctx, st, deps)
//	game.RotateDealer(st)
//
// # Architecture
//
// State is a plain mutable aggregate owned by a single goroutine. Every
// operation is a function taking the State explicitly:
//   - PostBlinds, ApplyFold, ApplyCheck, ApplyCall, ApplyRaiseTo: atomic mutations
//   - RunBettingRound: the action-queue state machine for one street
//   - BuildPots, Showdown: side-pot construction and chip distribution
//   - Policy: persona-driven AI decisions
//   - PlayHand: blinds through showdown
//
// Nothing in the engine sleeps or times out. Hosts add pacing through
// Deps.Pace and deadlines by wrapping the HumanProvider.
package game
