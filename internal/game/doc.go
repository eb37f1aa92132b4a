// Package game runs Schocken: players take turns throwing three dice, the
// worst hand of every mini-round takes chips, and the player who collects all
// thirteen chips loses the half.
//
// The structure nests as Round → Half → MiniRound → Turn:
//   - A Turn is up to three throws by one player, driven by its Strategy.
//   - A MiniRound gives every active player one turn. The first player's
//     throw count caps the others.
//   - A Half repeats mini-rounds until a balance reaches 13 or someone throws
//     a Schock-out. ChipEconomy does the book keeping.
//   - A Round is two halves, and a tie-break half between the two losers if
//     they differ.
//
// # Basic Usage
//
//	g := game.NewGame(randutil.New(42), game.WithLogger(logger))
//	err := g.AddPlayers(
//	    game.NewPlayer("Anna", bot.NewGreedy()),
//	    game.NewPlayer("Ben", bot.NewGreedy()),
//	)
//	rounds, err := g.PlayRounds(10)
//
// A game is sequential and never touches the network or the file system.
// Completed records are not modified after their round ends; use the View
// methods for plain-data copies.
package game
