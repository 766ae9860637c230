package main

import (
	"fmt"
	"time"

	"github.com/gcheng713/pokerglasses/internal/analysis"
	"github.com/gcheng713/pokerglasses/poker"
)

// OddsCmd analyzes a single hand from the command line
type OddsCmd struct {
	Hole      string  `kong:"arg,help='Hole cards, e.g. \"AsKd\"'"`
	Board     string  `kong:"arg,optional,help='Board cards, e.g. \"2c7hJs\"'"`
	Opponents int     `kong:"default='1',help='Number of opponents to simulate'"`
	Samples   int     `kong:"default='10000',help='Monte Carlo samples'"`
	Seed      int64   `kong:"help='Deterministic RNG seed (optional)'"`
	Pot       float64 `kong:"default='0',help='Current pot size'"`
	ToCall    float64 `kong:"default='0',help='Amount to call'"`
	Late      bool    `kong:"help='Assume late position'"`
}

func (c *OddsCmd) Run() error {
	hole, err := poker.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("hole cards: %w", err)
	}
	if len(hole) != 2 {
		return fmt.Errorf("expected 2 hole cards, got %d", len(hole))
	}

	var board []poker.Card
	if c.Board != "" {
		board, err = poker.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("board cards: %w", err)
		}
		if len(board) > 5 {
			return fmt.Errorf("expected at most 5 board cards, got %d", len(board))
		}
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	position := poker.Early
	if c.Late {
		position = poker.Late
	}

	category := analysis.Categorize(hole[0], hole[1])
	strength := analysis.Strength(hole, board)
	result := analysis.Simulate(hole, board, c.Opponents, c.Samples, seed)

	fmt.Printf("Hand:      %s %s (%s, %s)\n", hole[0], hole[1], analysis.CanonicalCode(hole[0], hole[1]), category)
	if len(board) > 0 {
		fmt.Printf("Board:     %v (%s)\n", cardList(board), poker.ClassifyTexture(board))
		fmt.Printf("Made hand: %s\n", analysis.Label(hole, board))
	}
	fmt.Printf("Strength:  %.3f\n", strength)
	fmt.Printf("Equity:    %.1f%% vs %d opponent(s) (win %.1f%%, tie %.1f%%)\n",
		result.Equity()*100, c.Opponents, result.WinRate()*100, result.TieRate()*100)

	if outs := analysis.DrawOuts(hole, board); len(outs) > 0 {
		fmt.Println("Draws:")
		for draw, n := range outs {
			fmt.Printf("  %-16s %d outs\n", draw, n)
		}
	}

	if c.ToCall > 0 {
		fmt.Printf("Pot odds:  %.3f\n", analysis.PotOdds(c.Pot, c.ToCall))
	}

	advice := analysis.Recommend(strength, result.Equity(), c.Pot, c.ToCall, c.Opponents, position)
	if advice.Amount > 0 {
		fmt.Printf("Advice:    %s %.0f (confidence %.2f)\n", advice.Action, advice.Amount, advice.Confidence)
	} else {
		fmt.Printf("Advice:    %s (confidence %.2f)\n", advice.Action, advice.Confidence)
	}

	return nil
}

func cardList(cards []poker.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += c.String()
	}
	return out
}
