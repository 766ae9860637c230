package analysis

import (
	"context"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gcheng713/pokerglasses/internal/randutil"
	"github.com/gcheng713/pokerglasses/poker"
)

// parallelThreshold is the sample count above which the simulation is
// split across workers.
const parallelThreshold = 500

// Result accumulates Monte Carlo showdown outcomes.
type Result struct {
	Wins    int
	Ties    int
	Samples int
}

// Equity returns pot equity: wins plus half of ties, as a fraction of
// samples.
func (r Result) Equity() float64 {
	if r.Samples == 0 {
		return 0
	}
	return (float64(r.Wins) + float64(r.Ties)/2) / float64(r.Samples)
}

// WinRate returns the fraction of samples won outright.
func (r Result) WinRate() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Samples)
}

// TieRate returns the fraction of samples that split.
func (r Result) TieRate() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Ties) / float64(r.Samples)
}

func (r *Result) add(other Result) {
	r.Wins += other.Wins
	r.Ties += other.Ties
	r.Samples += other.Samples
}

// Simulate estimates hero equity against the given number of random
// opponent hands by dealing out the remaining board. Larger sample
// counts are split across parallel workers.
func Simulate(hole, board []poker.Card, opponents, samples int, seed int64) Result {
	if len(hole) != 2 || len(board) > 5 || samples <= 0 {
		return Result{}
	}

	available := availableCards(hole, board)

	if samples < parallelThreshold {
		return simulate(hole, board, available, opponents, samples, randutil.New(seed))
	}

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}

	g, _ := errgroup.WithContext(context.Background())
	results := make([]Result, workers)

	perWorker := samples / workers
	remainder := samples % workers
	for w := 0; w < workers; w++ {
		w := w
		workerSamples := perWorker
		if w < remainder {
			workerSamples++
		}
		g.Go(func() error {
			rng := randutil.Derive(seed, uint64(w)+1)
			results[w] = simulate(hole, board, available, opponents, workerSamples, rng)
			return nil
		})
	}
	g.Wait()

	var total Result
	for _, r := range results {
		total.add(r)
	}
	return total
}

func availableCards(hole, board []poker.Card) []poker.Card {
	used := poker.NewHand(hole...)
	for _, c := range board {
		used.AddCard(c)
	}

	available := make([]poker.Card, 0, 52-len(hole)-len(board))
	for rank := poker.Two; rank <= poker.Ace; rank++ {
		for suit := poker.Spades; suit <= poker.Clubs; suit++ {
			card := poker.NewCard(rank, suit)
			if !used.HasCard(card) {
				available = append(available, card)
			}
		}
	}
	return available
}

func simulate(hole, board, available []poker.Card, opponents, samples int, rng *rand.Rand) Result {
	var result Result

	needed := 2*opponents + (5 - len(board))
	if needed > len(available) {
		return result
	}

	pool := make([]poker.Card, len(available))
	heroCards := make([]poker.Card, 0, 7)
	oppCards := make([]poker.Card, 0, 7)

	for i := 0; i < samples; i++ {
		copy(pool, available)

		// Partial Fisher-Yates: only the cards we deal need shuffling.
		for j := 0; j < needed; j++ {
			k := j + rng.IntN(len(pool)-j)
			pool[j], pool[k] = pool[k], pool[j]
		}

		finalBoard := append(append(make([]poker.Card, 0, 5), board...), pool[2*opponents:needed]...)

		heroCards = append(heroCards[:0], hole...)
		heroCards = append(heroCards, finalBoard...)
		heroRank := poker.Evaluate(poker.NewHand(heroCards...))

		// With nobody left to beat every runout is a win.
		won, tied := true, false
		for opp := 0; opp < opponents; opp++ {
			oppCards = append(oppCards[:0], pool[2*opp:2*opp+2]...)
			oppCards = append(oppCards, finalBoard...)
			oppRank := poker.Evaluate(poker.NewHand(oppCards...))
			cmp := poker.CompareHands(heroRank, oppRank)
			if cmp < 0 {
				won, tied = false, false
				break
			}
			if cmp == 0 {
				won, tied = false, true
			}
		}

		if won {
			result.Wins++
		} else if tied {
			result.Ties++
		}
		result.Samples++
	}

	return result
}
