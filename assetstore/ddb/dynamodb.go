/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/settingstore/errors"
	"github.com/suparena/settingstore/registry"
	"github.com/suparena/settingstore/settingmodels"
)

// API is the subset of the DynamoDB client used by Store.
type API interface {
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
}

// ClientConfig carries the connection settings for NewDynamoDBClient.
type ClientConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

// Store implements assetstore.Store using AWS DynamoDB.
// Every asset occupies one partition: a header item and one item per record slot.
type Store struct {
	client    API
	tableName string
	table     TableConfig
	opts      settingmodels.LoadOptions
}

// Option configures a Store.
type Option func(*Store)

// WithTableConfig overrides the key attribute names.
func WithTableConfig(tc TableConfig) Option {
	return func(s *Store) {
		s.table = tc
	}
}

// WithLoadOptions applies paging and retry options to every Load.
func WithLoadOptions(opts ...settingmodels.LoadOption) Option {
	return func(s *Store) {
		for _, opt := range opts {
			opt(&s.opts)
		}
	}
}

// NewDynamoDBClient initializes a DynamoDB client.
// Static credentials are used when an access key is given; otherwise the default
// AWS credential chain applies.
func NewDynamoDBClient(ctx context.Context, cc ClientConfig) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cc.Region),
	}
	if cc.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cc.AccessKey, cc.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if cc.Endpoint != "" {
			o.BaseEndpoint = aws.String(cc.Endpoint)
		}
	})

	slog.Debug("dynamodb client initialized", "region", cc.Region, "endpoint", cc.Endpoint)
	return client, nil
}

// New constructs a Store over an existing client.
func New(client API, tableName string, opts ...Option) (*Store, error) {
	if client == nil {
		return nil, errors.NewValidationError("client", "must not be nil")
	}
	if tableName == "" {
		return nil, errors.NewValidationError("tableName", "must not be empty")
	}
	s := &Store{
		client:    client,
		tableName: tableName,
		table:     DefaultTableConfig,
		opts:      settingmodels.DefaultLoadOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewDynamodbStore creates a client from cc and constructs a Store for tableName.
func NewDynamodbStore(ctx context.Context, cc ClientConfig, tableName string, opts ...Option) (*Store, error) {
	client, err := NewDynamoDBClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return New(client, tableName, opts...)
}

// TableName returns the table the store reads from.
func (s *Store) TableName() string {
	return s.tableName
}

// keysFor expands the index map of the document's record type for path.
// A registered map that blanks out one of the key templates is rejected with
// an error matching errors.ErrNoIndexMap.
func keysFor(doc any, path string) (pk string, headerSK string, recordSK func(seq int) string, err error) {
	rt := recordType(doc)
	if rt == nil {
		return "", "", nil, errors.NewValidationError("doc", fmt.Sprintf("%T has no Records field", doc))
	}
	idx := registry.IndexMapFor(rt)
	for _, name := range []string{"PK", "SK", "HeaderSK"} {
		if idx[name] == "" {
			return "", "", nil, fmt.Errorf("%w: %s has no %s template", errors.ErrNoIndexMap, rt, name)
		}
	}

	values := map[string]string{"Path": path}
	pk = registry.Expand(idx["PK"], values)
	headerSK = registry.Expand(idx["HeaderSK"], values)
	recordSK = func(seq int) string {
		return registry.Expand(idx["SK"], map[string]string{
			"Path": path,
			"Seq":  fmt.Sprintf("%06d", seq),
		})
	}
	return pk, headerSK, recordSK, nil
}

// recordType returns R for a Document[R], *Document[R], or any struct with a
// Records []*R field. It returns nil when doc has no such field.
func recordType(doc any) reflect.Type {
	t := reflect.TypeOf(doc)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	f, ok := t.FieldByName("Records")
	if !ok || f.Type.Kind() != reflect.Slice {
		return nil
	}
	elem := f.Type.Elem()
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	return elem
}
