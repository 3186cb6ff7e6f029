package sentiment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/tastemood/internal/model"
	"github.com/jonreiter/govader"
)

// vaderClassifier scores text with the VADER lexicon. The analyzer holds only
// read-only lexicon data after construction.
type vaderClassifier struct {
	analyzer         *govader.SentimentIntensityAnalyzer
	neutralThreshold float64
}

func newVaderClassifier(cfg Config) *vaderClassifier {
	return &vaderClassifier{
		analyzer:         govader.NewSentimentIntensityAnalyzer(),
		neutralThreshold: cfg.NeutralThreshold,
	}
}

func (v *vaderClassifier) Classify(ctx context.Context, text string) (model.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return model.Prediction{}, err
	}

	// Input made only of links or markup cleans down to nothing; score the
	// raw text so every non-empty input still gets a label.
	plain := PlainText(text)
	if plain == "" {
		plain = strings.TrimSpace(text)
	}
	if plain == "" {
		return model.Prediction{}, fmt.Errorf("text is empty")
	}

	scores := v.analyzer.PolarityScores(plain)
	return compoundToPrediction(scores.Compound, v.neutralThreshold), nil
}

// compoundToPrediction maps a VADER compound score in [-1,1] onto a label and
// a confidence in [0,1]. p = (c+1)/2 is read as the probability of POSITIVE.
// With threshold > 0, |c| < threshold is NEUTRAL with confidence 1-|c|.
func compoundToPrediction(compound, threshold float64) model.Prediction {
	compound = math.Max(-1, math.Min(1, compound))

	if threshold > 0 && math.Abs(compound) < threshold {
		return model.Prediction{Label: model.LabelNeutral, Score: 1 - math.Abs(compound)}
	}

	p := (compound + 1) / 2
	if p >= 0.5 {
		return model.Prediction{Label: model.LabelPositive, Score: p}
	}
	return model.Prediction{Label: model.LabelNegative, Score: 1 - p}
}
