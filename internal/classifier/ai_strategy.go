package classifier

import (
	"context"
	"fmt"
	"strings"

	"banksheets/internal/logging"
	"banksheets/internal/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
)

// AIStrategy asks the Gemini API for a category when the keyword rules come
// up empty. It is optional and disabled unless an API key is configured; any
// failure is reported as a miss so the pipeline degrades to the default
// label instead of aborting.
type AIStrategy struct {
	client *genai.Client
	model  string
	labels []string
	logger logging.Logger
}

// NewAIStrategy creates a Gemini-backed strategy. The allowed labels are
// included in the prompt so the model answers from the same closed set the
// keyword rules use.
func NewAIStrategy(ctx context.Context, apiKey, model string, config models.CategoriesConfig, logger logging.Logger) (*AIStrategy, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI categorization requires an API key")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	labels := []string{models.CategoryEbay, models.CategoryIncome}
	for _, expense := range config.Expenses {
		labels = append(labels, expense.Name)
	}
	labels = append(labels, models.CategoryOther)

	return &AIStrategy{
		client: client,
		model:  model,
		labels: labels,
		logger: logger,
	}, nil
}

// Name returns the name of this strategy for logging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Close releases the underlying API client.
func (s *AIStrategy) Close() error {
	return s.client.Close()
}

// Categorize prompts the model with the transaction and accepts the answer
// only if it is one of the allowed labels.
func (s *AIStrategy) Categorize(ctx context.Context, details string, amount decimal.Decimal) (string, bool, error) {
	if strings.TrimSpace(details) == "" {
		return "", false, nil
	}

	prompt := fmt.Sprintf(
		"Categorize this bank transaction.\nDetails: %s\nAmount: %s\n"+
			"Answer with exactly one of: %s",
		details, amount.StringFixed(2), strings.Join(s.labels, ", "))

	model := s.client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", false, fmt.Errorf("Gemini request failed: %w", err)
	}

	answer := extractText(resp)
	for _, label := range s.labels {
		if strings.EqualFold(answer, label) {
			s.logger.WithFields(
				logging.Field{Key: "details", Value: details},
				logging.Field{Key: "category", Value: label},
			).Debug("Transaction categorized by Gemini")
			return label, true, nil
		}
	}

	s.logger.WithField("answer", answer).Debug("Gemini returned an unknown label, ignoring")
	return "", false, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}
