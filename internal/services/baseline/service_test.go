package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anvitha1105/Capstone-finalreview/internal/model"
)

func TestCompareDocumentedFormula(t *testing.T) {
	c := New(Defaults())

	// floor(850 * 0.925 * 1.0) = 786
	aiScore, verdict := c.Compare(model.GameAIImage, 850)
	assert.Equal(t, 786, aiScore)
	assert.Equal(t, model.VerdictHumanBetter, verdict)
}

func TestCompareTieFavorsAI(t *testing.T) {
	c := New(map[model.GameType]model.Baseline{
		"mirror": {Accuracy: 100, ScoreMultiplier: 100},
	})

	aiScore, verdict := c.Compare("mirror", 500)
	assert.Equal(t, 500, aiScore)
	assert.Equal(t, model.VerdictAIBetter, verdict)
}

func TestCompareZeroScore(t *testing.T) {
	c := New(Defaults())

	aiScore, verdict := c.Compare(model.GameTextAI, 0)
	assert.Equal(t, 0, aiScore)
	assert.Equal(t, model.VerdictAIBetter, verdict)
}

func TestCompareUnknownModeUsesDefaults(t *testing.T) {
	c := New(Defaults())

	// floor(100 * 0.80 * 1.0) = 80
	aiScore, verdict := c.Compare("unheard_of_mode", 100)
	assert.Equal(t, 80, aiScore)
	assert.Equal(t, model.VerdictHumanBetter, verdict)
}

func TestLookupKnownAndUnknown(t *testing.T) {
	c := New(Defaults())

	known := c.Lookup(model.GameMemoryChallenge)
	assert.Equal(t, 78.3, known.Accuracy)

	unknown := c.Lookup("unheard_of_mode")
	assert.Equal(t, model.DefaultBaselineAccuracy, unknown.Accuracy)
	assert.Equal(t, model.DefaultBaselineMultiplier, unknown.ScoreMultiplier)
}

func TestComparatorIsolatedFromCallerMap(t *testing.T) {
	src := Defaults()
	c := New(src)

	src[model.GameAIImage] = model.Baseline{Accuracy: 1, ScoreMultiplier: 1}

	assert.Equal(t, 92.5, c.Lookup(model.GameAIImage).Accuracy)
}

func TestAILeaders(t *testing.T) {
	leaders := AILeaders()
	assert.Len(t, leaders, 3)
	for _, l := range leaders {
		assert.True(t, l.IsAI)
		assert.Positive(t, l.TotalScore)
	}
}
