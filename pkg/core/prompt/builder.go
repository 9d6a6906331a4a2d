package prompt

import (
	"fmt"

	"report_vqa/pkg/core/metric"
	"report_vqa/pkg/models"
)

// QueryArgs are the fields interpolated into the judgment question.
type QueryArgs struct {
	Topic  string
	Metric string
	Value  models.Scalar
	Unit   models.Scalar
}

// Builder renders visual QA prompts from a prompt registry.
type Builder struct {
	registry *Registry
}

// NewBuilder returns a Builder reading templates from r.
func NewBuilder(r *Registry) *Builder {
	return &Builder{registry: r}
}

func (b *Builder) render(id string, ctx *PromptExecutionContext) (string, error) {
	pt, err := b.registry.GetPrompt(id)
	if err != nil {
		return "", err
	}
	out, err := RenderUserPrompt(pt, ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", id, err)
	}
	return out, nil
}

// AssembleQuery formats the yes / yes but not complete / no question for one
// metric. Empty topic or metric text is interpolated as-is.
func (b *Builder) AssembleQuery(args QueryArgs) (string, error) {
	ctx := NewContext().
		Set("Topic", args.Topic).
		Set("Metric", args.Metric).
		Set("Value", args.Value.String()).
		Set("Unit", args.Unit.String())
	return b.render(JudgmentQueryID, ctx)
}

// AssemblePrompt wraps query verbatim in the observe/evidence/think/answer
// instructions.
func (b *Builder) AssemblePrompt(query string) (string, error) {
	return b.render(VisualQAID, NewContext().Set("Query", query))
}

// GeneratePrompt builds the full prompt for c against the metrics of its
// report. A sid with no record yields *metric.NotFoundError.
func (b *Builder) GeneratePrompt(c models.Case, groups []models.CodeGroup) (string, error) {
	target, ok := metric.Locate(groups, c.SID)
	if !ok {
		return "", &metric.NotFoundError{SID: c.SID}
	}

	query, err := b.AssembleQuery(QueryArgs{
		Topic:  target.Topic,
		Metric: target.Metric,
		Value:  c.Value,
		Unit:   c.Unit,
	})
	if err != nil {
		return "", err
	}

	return b.AssemblePrompt(query)
}
