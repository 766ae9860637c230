package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gcheng713/pokerglasses/cmd/pokerglasses/shared"
	"github.com/gcheng713/pokerglasses/internal/advisor"
	"github.com/gcheng713/pokerglasses/internal/game"
	"github.com/gcheng713/pokerglasses/internal/profile"
	"github.com/gcheng713/pokerglasses/poker"
)

// PlayCmd runs an interactive table: you sit in seat 0, the advisor
// drives the rest.
type PlayCmd struct {
	Opponents  int    `kong:"default='3',help='Number of advisor-driven opponents'"`
	Chips      int    `kong:"default='1000',help='Starting chip count'"`
	SmallBlind int    `kong:"default='5',help='Small blind amount'"`
	Samples    int    `kong:"default='1000',help='Monte Carlo samples per decision'"`
	Hands      int    `kong:"default='10',help='Number of hands to play'"`
	Seed       *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

const heroSeat = 0

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug, false)

	if c.Opponents < 1 || c.Opponents > 9 {
		return fmt.Errorf("opponents must be between 1 and 9")
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	names := make([]string, 0, c.Opponents+1)
	names = append(names, "You")
	for i := 1; i <= c.Opponents; i++ {
		names = append(names, fmt.Sprintf("Bot%d", i))
	}

	analyzer := profile.NewAnalyzer(logger)
	g := game.New(names, c.Chips, c.SmallBlind, seed, analyzer, logger)
	adv := advisor.New(c.Samples, seed, logger)
	input := bufio.NewScanner(os.Stdin)

	for hand := 1; hand <= c.Hands; hand++ {
		if g.Player(heroSeat).Chips == 0 {
			fmt.Println("You are out of chips.")
			break
		}

		fmt.Printf("\n=== Hand %d ===\n", hand)
		g.StartHand()

		quit, err := c.playHand(g, adv, analyzer, input)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}

	fmt.Printf("\nFinal stacks:\n")
	for _, p := range g.Players() {
		fmt.Printf("  %-8s %d\n", p.Name, p.Chips)
	}
	return nil
}

func (c *PlayCmd) playHand(g *game.Game, adv *advisor.Advisor, analyzer *profile.Analyzer, input *bufio.Scanner) (bool, error) {
	for g.Live() {
		if g.HandDone() {
			break
		}
		if g.IsRoundComplete() {
			if err := g.AdvanceStreet(); err != nil {
				return false, err
			}
			continue
		}

		idx := g.ActionIndex()
		if idx != heroSeat {
			action := g.AIAction(idx, adv)
			if err := g.ProcessAction(idx, action); err != nil {
				return false, err
			}
			describeAction(g.Player(idx).Name, action)
			continue
		}

		printTable(g)
		printAdvice(g, adv)

		action, quit := promptAction(g, input)
		if quit {
			return true, nil
		}
		if err := g.ProcessAction(heroSeat, action); err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
	}

	winners := g.Winners()
	pot := g.Pot()
	g.EndHand(winners)

	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}
	fmt.Printf("Pot of %d goes to %s\n", pot, strings.Join(names, ", "))

	for _, p := range g.Players() {
		if style := analyzer.Style(p.Name); style != profile.Unknown {
			fmt.Printf("  read on %s: %s\n", p.Name, style)
		}
	}
	return false, nil
}

// promptAction reads the hero's move from stdin. EOF or "quit" abandons
// the session.
func promptAction(g *game.Game, input *bufio.Scanner) (poker.Action, bool) {
	for {
		legal := g.LegalActions(heroSeat)
		options := make([]string, len(legal))
		for i, a := range legal {
			options[i] = a.String()
		}
		fmt.Printf("Your move [%s]: ", strings.Join(options, "/"))

		if !input.Scan() {
			return poker.Action{}, true
		}
		fields := strings.Fields(strings.ToLower(input.Text()))
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" {
			return poker.Action{}, true
		}

		actionType, ok := poker.ParseActionType(fields[0])
		if !ok {
			fmt.Printf("  unknown action %q\n", fields[0])
			continue
		}

		action := poker.Action{Type: actionType}
		if actionType == poker.Raise {
			if len(fields) < 2 {
				fmt.Printf("  raise needs an amount, e.g. \"raise %d\"\n", g.MinRaise())
				continue
			}
			amount, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Printf("  bad amount %q\n", fields[1])
				continue
			}
			action.Amount = amount
		}
		return action, false
	}
}

func printTable(g *game.Game) {
	hero := g.Player(heroSeat)
	fmt.Printf("\n[%s]  pot %d  to call %d\n", g.Street(), g.Pot(), g.CurrentBet()-hero.CurrentBet)
	if len(g.Community()) > 0 {
		fmt.Printf("Board: %s (%s)\n", cardList(g.Community()), g.Texture())
	}
	fmt.Printf("Your hand: %s (stack %d)\n", cardList(hero.Cards), hero.Chips)

	for i, p := range g.Players() {
		if i == heroSeat {
			continue
		}
		status := ""
		if p.Folded {
			status = " folded"
		} else if p.AllIn {
			status = " all-in"
		}
		fmt.Printf("  %-8s stack %-6d bet %d%s\n", p.Name, p.Chips, p.CurrentBet, status)
	}
}

func printAdvice(g *game.Game, adv *advisor.Advisor) {
	advice := g.Advice(heroSeat, adv)
	if advice.Amount > 0 {
		fmt.Printf("Advice: %s %.0f (confidence %.2f)\n", advice.Action, advice.Amount, advice.Confidence)
	} else {
		fmt.Printf("Advice: %s (confidence %.2f)\n", advice.Action, advice.Confidence)
	}
	for _, reason := range advice.Reasoning {
		fmt.Printf("  %s\n", reason)
	}
}

func describeAction(name string, action poker.Action) {
	if action.Amount > 0 {
		fmt.Printf("%s: %s %d\n", name, action.Type, action.Amount)
		return
	}
	fmt.Printf("%s: %s\n", name, action.Type)
}
