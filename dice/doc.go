// Package dice implements the dice and hand ranking rules of Schocken.
//
// A Hand holds three dice and classifies them into a Category. Categories are
// totally ordered, weakest first:
//
//	High Dice < Straight < General < Schock < Schock-out
//
// Within a kind the parameter decides (Schock-6 beats Schock-5, 65-4 beats
// 65-3). Each category is worth a fixed number of chips, see Category.Chips.
//
// # Basic Usage
//
//	h, err := dice.NewHand(1, 1, 5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(h)            // Schock-5
//	chips, _ := h.Chips()     // 5
//
// # Deterministic Testing
//
// Rolling takes an explicit *rand.Rand from math/rand/v2:
//
//	rng := randutil.New(42)
//	h := dice.NewRandomHand(rng)
//
// # Put-together hands
//
// A hand is assembled once any die was set aside during the turn. A 1-2-3
// that was put together this way is high dice (32-1) instead of a straight.
package dice
