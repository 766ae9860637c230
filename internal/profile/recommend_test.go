package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcheng713/pokerglasses/poker"
)

func TestRecommendMonsterRaises(t *testing.T) {
	advice := Recommend(Situation{Strength: 0.9, Pot: 100, ToCall: 10}, nil)
	assert.Equal(t, poker.Raise, advice.Action)
	assert.InDelta(t, 75, advice.Amount, 0.01)
	assert.Equal(t, 0.9, advice.Confidence)
	assert.Equal(t, []string{"Strong hand strength"}, advice.Reasoning)
}

func TestRecommendStrongHand(t *testing.T) {
	sit := Situation{Strength: 0.7, Pot: 100, ToCall: 10}

	passiveTable := map[string]Style{"a": LoosePassive, "b": TightPassive}
	advice := Recommend(sit, passiveTable)
	assert.Equal(t, poker.Raise, advice.Action)
	assert.InDelta(t, 50, advice.Amount, 0.01)
	assert.Equal(t, 0.8, advice.Confidence)
	assert.Equal(t, []string{"Strong hand against passive opponents"}, advice.Reasoning)

	aggressiveTable := map[string]Style{"a": LooseAggressive, "b": TightAggressive}
	advice = Recommend(sit, aggressiveTable)
	assert.Equal(t, poker.Call, advice.Action, "slow down against multiple aggressive opponents")
	assert.Equal(t, 0.7, advice.Confidence)
	assert.Equal(t, []string{"Strong hand but multiple aggressive opponents"}, advice.Reasoning)
}

func TestRecommendMediumHand(t *testing.T) {
	goodPrice := Recommend(Situation{Strength: 0.5, Pot: 100, ToCall: 10}, nil)
	assert.Equal(t, poker.Call, goodPrice.Action)
	assert.Equal(t, 0.6, goodPrice.Confidence)
	assert.Equal(t, []string{"Decent hand with good pot odds"}, goodPrice.Reasoning)

	badPrice := Recommend(Situation{Strength: 0.45, Pot: 10, ToCall: 20}, nil)
	assert.Equal(t, poker.Fold, badPrice.Action)
	assert.Equal(t, 0.65, badPrice.Confidence)
	assert.Equal(t, []string{"Medium hand with poor pot odds"}, badPrice.Reasoning)
}

func TestRecommendWeakHandBluffs(t *testing.T) {
	sit := Situation{
		Strength: 0.2,
		Pot:      100,
		ToCall:   10,
		Position: poker.Late,
		Texture:  poker.TextureDry,
	}
	tightTable := map[string]Style{"a": TightPassive, "b": TightAggressive}

	advice := Recommend(sit, tightTable)
	assert.Equal(t, poker.Raise, advice.Action, "tight table in position on a dry board is worth a bluff")
	assert.InDelta(t, 30, advice.Amount, 0.01)
	assert.Equal(t, 0.5, advice.Confidence)
	assert.Equal(t, []string{"Bluff opportunity identified"}, advice.Reasoning)
}

func TestRecommendWeakHandFolds(t *testing.T) {
	sit := Situation{Strength: 0.2, Pot: 100, ToCall: 10, Position: poker.Early}
	looseTable := map[string]Style{"a": LoosePassive, "b": LooseAggressive}

	advice := Recommend(sit, looseTable)
	assert.Equal(t, poker.Fold, advice.Action)
	assert.Equal(t, 0.8, advice.Confidence)
	assert.Equal(t, []string{"Weak hand and no good bluff opportunity"}, advice.Reasoning)
}

func TestBluffScore(t *testing.T) {
	base := Situation{Position: poker.Early}
	assert.Equal(t, 0.0, BluffScore(base, nil))

	sit := Situation{Position: poker.Late, Texture: poker.TextureDry, PreviousCheck: true}
	assert.InDelta(t, 0.7, BluffScore(sit, nil), 1e-9)

	tightTable := map[string]Style{"a": TightPassive, "b": TightAggressive}
	assert.InDelta(t, 1.0, BluffScore(sit, tightTable), 1e-9, "score is clamped at one")

	oneTight := map[string]Style{"a": TightPassive}
	assert.InDelta(t, 0.9, BluffScore(sit, oneTight), 1e-9)
}
