/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/settingstore/errors"
	"github.com/suparena/settingstore/settingmodels"
)

// Load reads every item of the asset's partition and decodes the record slots,
// in sequence order, into out.
func (s *Store) Load(ctx context.Context, path string, out any) error {
	pk, headerSK, _, err := keysFor(out, path)
	if err != nil {
		return err
	}

	items, err := s.queryPartition(ctx, pk)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return errors.NewNotFoundError("ddb", path)
	}

	var header map[string]types.AttributeValue
	type slot struct {
		seq    int
		record types.AttributeValue
	}
	slots := make([]slot, 0, len(items))

	for _, item := range items {
		if stringAttr(item, s.table.SortKeyName) == headerSK || stringAttr(item, attrKind) == kindHeader {
			header = item
			continue
		}
		seq, err := strconv.Atoi(numberAttr(item, attrSeq))
		if err != nil {
			return fmt.Errorf("record item in %q has no valid %s: %w", path, attrSeq, err)
		}
		rec, ok := item[attrRecord]
		if !ok {
			rec = &types.AttributeValueMemberNULL{Value: true}
		}
		slots = append(slots, slot{seq: seq, record: rec})
	}

	sort.SliceStable(slots, func(i, j int) bool { return slots[i].seq < slots[j].seq })

	list := make([]types.AttributeValue, 0, len(slots))
	for _, sl := range slots {
		list = append(list, sl.record)
	}

	doc := &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
		"Records": &types.AttributeValueMemberL{Value: list},
	}}
	if err := attributevalue.Unmarshal(doc, out); err != nil {
		return fmt.Errorf("failed to unmarshal records of %q: %w", path, err)
	}

	if header != nil {
		if acc, ok := out.(settingmodels.HeaderAccessor); ok {
			h, err := decodeHeader(header)
			if err != nil {
				return fmt.Errorf("failed to decode header of %q: %w", path, err)
			}
			acc.SetHeader(h)
		}
	}
	return nil
}

// queryPartition pages through every item whose partition key equals pk.
func (s *Store) queryPartition(ctx context.Context, pk string) ([]map[string]types.AttributeValue, error) {
	opts := s.opts
	startTime := time.Now()
	var (
		items []map[string]types.AttributeValue
		pages int
	)

	input := &sdk.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]string{
			"#pk": s.table.PartitionKeyName,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
		Limit:          aws.Int32(opts.PageSize),
		ConsistentRead: aws.Bool(opts.ConsistentRead),
	}

	for {
		out, err := s.queryWithRetry(ctx, input, opts)
		if err != nil {
			return nil, err
		}
		pages++
		items = append(items, out.Items...)

		if opts.ProgressHandler != nil {
			opts.ProgressHandler(settingmodels.LoadProgress{
				ItemsLoaded: int64(len(items)),
				PagesLoaded: pages,
				StartTime:   startTime,
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// queryWithRetry executes a query with linear backoff on retryable errors
func (s *Store) queryWithRetry(ctx context.Context, input *sdk.QueryInput, opts settingmodels.LoadOptions) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= opts.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := s.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return nil, fmt.Errorf("query error: %w", err)
		}

		if attempt < opts.MaxRetries {
			backoff := time.Duration(attempt+1) * opts.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", opts.MaxRetries, lastErr)
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	var (
		throughput *types.ProvisionedThroughputExceededException
		limit      *types.RequestLimitExceeded
		internal   *types.InternalServerError
	)
	if stderrors.As(err, &throughput) || stderrors.As(err, &limit) || stderrors.As(err, &internal) {
		return true
	}

	var retryable interface{ IsRetryable() bool }
	if stderrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

func decodeHeader(item map[string]types.AttributeValue) (settingmodels.Header, error) {
	h := settingmodels.Header{Name: stringAttr(item, attrName)}
	if raw := stringAttr(item, attrUpdatedAt); raw != "" {
		dt, err := strfmt.ParseDateTime(raw)
		if err != nil {
			return h, err
		}
		h.UpdatedAt = &dt
	}
	return h, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func numberAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberN); ok {
		return v.Value
	}
	return ""
}
