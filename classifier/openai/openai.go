// Package openai provides a core.Classifier backed by the OpenAI Chat
// Completions API. The adapter carries a single fixed labelling prompt at
// temperature zero and parses the one-line reply against the closed label
// sets; anything unparseable surfaces as a *core.ClassificationError so the
// router can fall back to safe defaults.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/hupe1980/supportmesh/classifier"
	"github.com/hupe1980/supportmesh/core"
)

// Options configure the OpenAI classifier adapter. Fields intentionally
// mirror a minimal subset of Chat Completion parameters; extend via
// functional options without breaking callers.
type Options struct {
	Model               openai.ChatModel
	MaxCompletionTokens int64
}

// Classifier wraps the OpenAI Chat Completions API behind core.Classifier.
type Classifier struct {
	client *openai.Client
	opts   Options
}

// NewClassifier creates an OpenAI classifier using the official client
// (API key from the environment).
func NewClassifier(optFns ...func(o *Options)) *Classifier {
	client := openai.NewClient()
	return NewClassifierFromClient(&client, optFns...)
}

// NewClassifierFromClient creates an OpenAI classifier from an existing
// client.
func NewClassifierFromClient(client *openai.Client, optFns ...func(o *Options)) *Classifier {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		MaxCompletionTokens: 16,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Classifier{client: client, opts: opts}
}

// Classify labels text with one temperature-zero completion.
func (c *Classifier) Classify(ctx context.Context, text string) (core.Classification, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               c.opts.Model,
		Temperature:         openai.Float(0),
		MaxCompletionTokens: openai.Int(c.opts.MaxCompletionTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(classifier.Instructions),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return core.Classification{}, core.NewClassificationError("openai", fmt.Errorf("openai api error: %w", err))
	}
	if len(resp.Choices) == 0 {
		return core.Classification{}, core.NewClassificationError("openai", fmt.Errorf("no choices returned"))
	}

	labels, err := classifier.ParseLabels(resp.Choices[0].Message.Content)
	if err != nil {
		return core.Classification{}, core.NewClassificationError("openai", err)
	}
	return labels, nil
}
