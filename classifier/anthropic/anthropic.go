// Package anthropic provides a core.Classifier backed by the Anthropic
// Messages API. Like the openai adapter it sends a single fixed labelling
// prompt at temperature zero and parses the one-line reply against the
// closed label sets.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hupe1980/supportmesh/classifier"
	"github.com/hupe1980/supportmesh/core"
)

// Options configure the Anthropic classifier adapter (model id, max tokens,
// API key).
type Options struct {
	Model     anthropic.Model
	MaxTokens int64
	APIKey    string
}

// Classifier wraps the Anthropic Messages API behind core.Classifier.
type Classifier struct {
	client *anthropic.Client
	opts   Options
}

// NewClassifier creates an Anthropic classifier using the official client.
func NewClassifier(optFns ...func(o *Options)) *Classifier {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Classifier{client: &client, opts: opts}
}

// NewClassifierFromClient creates an Anthropic classifier from an existing
// client.
func NewClassifierFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Classifier {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Classifier{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:     anthropic.ModelClaude3_5Sonnet20241022,
		MaxTokens: 16,
	}
}

// Classify labels text with one temperature-zero message.
func (c *Classifier) Classify(ctx context.Context, text string) (core.Classification, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.opts.Model,
		MaxTokens:   c.opts.MaxTokens,
		Temperature: anthropic.Float(0),
		System:      []anthropic.TextBlockParam{{Text: classifier.Instructions}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return core.Classification{}, core.NewClassificationError("anthropic", fmt.Errorf("anthropic api error: %w", err))
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}
	if sb.Len() == 0 {
		return core.Classification{}, core.NewClassificationError("anthropic", fmt.Errorf("no text content returned"))
	}

	labels, err := classifier.ParseLabels(sb.String())
	if err != nil {
		return core.Classification{}, core.NewClassificationError("anthropic", err)
	}
	return labels, nil
}
