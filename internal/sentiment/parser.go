package sentiment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/tastemood/internal/model"
)

// parsePrediction extracts label and score from an LLM reply.
func parsePrediction(content string) (model.Prediction, error) {
	var jsonResp struct {
		Label string   `json:"label"`
		Score *float64 `json:"score"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return model.Prediction{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	label := strings.ToUpper(strings.TrimSpace(jsonResp.Label))
	if label == "" {
		return model.Prediction{}, fmt.Errorf("no label found in response")
	}
	if jsonResp.Score == nil {
		return model.Prediction{}, fmt.Errorf("no score found in response")
	}

	prediction := model.Prediction{Label: label, Score: *jsonResp.Score}
	if err := prediction.Validate(); err != nil {
		return model.Prediction{}, err
	}
	return prediction, nil
}

// cleanMarkdownWrapper strips a ```json fence and any prose around the
// outermost JSON object.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}
