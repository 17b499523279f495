// Package dynamodb provides a core.SessionStore backed by a DynamoDB
// table. Each thread maps to one item keyed by PK holding the JSON-encoded
// conversation state; retention is delegated to the table's TTL attribute.
package dynamodb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	ddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/supportmesh/core"
)

const pkPrefix = "THREAD#"

// api is the minimal DynamoDB interface required by Store. Defined here for
// testability.
type api interface {
	GetItem(ctx context.Context, in *ddb.GetItemInput, optFns ...func(*ddb.Options)) (*ddb.GetItemOutput, error)
	PutItem(ctx context.Context, in *ddb.PutItemInput, optFns ...func(*ddb.Options)) (*ddb.PutItemOutput, error)
}

// Options configure the DynamoDB session store.
type Options struct {
	// TTL is the retention window written to the item's "ttl" attribute on
	// every save; zero omits the attribute (no expiry).
	TTL time.Duration
}

// Store persists conversation state in a DynamoDB table.
type Store struct {
	api       api
	tableName string
	ttl       time.Duration
}

// New creates a DynamoDB session store on the given table.
func New(client api, tableName string, optFns ...func(o *Options)) (*Store, error) {
	if client == nil {
		return nil, errors.New("dynamodb: client must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("dynamodb: table name must not be empty")
	}
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{api: client, tableName: tableName, ttl: opts.TTL}, nil
}

// Open creates a store on a client built from the default AWS configuration
// chain (environment, shared config, instance role).
func Open(ctx context.Context, tableName string, optFns ...func(o *Options)) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return New(ddb.NewFromConfig(cfg), tableName, optFns...)
}

func threadPK(threadID string) string { return pkPrefix + threadID }

// Load fetches and decodes the item for a thread. Unknown threads yield a
// freshly initialized state, not an error.
func (s *Store) Load(ctx context.Context, threadID string) (*core.ConversationState, error) {
	out, err := s.api.GetItem(ctx, &ddb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: threadPK(threadID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, core.NewPersistenceError(threadID, "load", err)
	}
	if out == nil || len(out.Item) == 0 {
		return core.NewConversationState(threadID), nil
	}

	raw, ok := out.Item["state"].(*types.AttributeValueMemberB)
	if !ok {
		return nil, core.NewPersistenceError(threadID, "load", fmt.Errorf("item missing binary attribute %q", "state"))
	}
	var state core.ConversationState
	if err := json.Unmarshal(raw.Value, &state); err != nil {
		return nil, core.NewPersistenceError(threadID, "load", fmt.Errorf("decode state: %w", err))
	}
	return &state, nil
}

// Save encodes and upserts the item for the thread, last-writer-wins,
// refreshing the TTL attribute when configured.
func (s *Store) Save(ctx context.Context, state *core.ConversationState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return core.NewPersistenceError(state.ThreadID, "save", fmt.Errorf("encode state: %w", err))
	}

	item := map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: threadPK(state.ThreadID)},
		"state":     &types.AttributeValueMemberB{Value: raw},
		"updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}
	if s.ttl > 0 {
		expires := time.Now().Add(s.ttl).Unix()
		item["ttl"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expires)}
	}

	_, err = s.api.PutItem(ctx, &ddb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return core.NewPersistenceError(state.ThreadID, "save", err)
	}
	return nil
}
