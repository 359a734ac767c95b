/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"reflect"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/settingstore/errors"
	"github.com/suparena/settingstore/settingmodels"
)

// Put replaces the asset at path with doc, a settingmodels.Document value or pointer.
// Existing items of the asset are deleted first so a shorter record list does not
// leave stale slots behind.
func (s *Store) Put(ctx context.Context, path string, doc any) error {
	pk, headerSK, recordSK, err := keysFor(doc, path)
	if err != nil {
		return err
	}

	av, err := attributevalue.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	m, ok := av.(*types.AttributeValueMemberM)
	if !ok {
		return errors.NewValidationError("doc", "must marshal to a map")
	}
	var records []types.AttributeValue
	if l, ok := m.Value["Records"].(*types.AttributeValueMemberL); ok {
		records = l.Value
	}

	if err := s.Delete(ctx, path, doc); err != nil && !errors.IsNotFound(err) {
		return err
	}

	header := map[string]types.AttributeValue{
		s.table.PartitionKeyName: &types.AttributeValueMemberS{Value: pk},
		s.table.SortKeyName:      &types.AttributeValueMemberS{Value: headerSK},
		attrKind:                 &types.AttributeValueMemberS{Value: kindHeader},
	}
	if h, ok := headerOf(doc); ok {
		if h.Name != "" {
			header[attrName] = &types.AttributeValueMemberS{Value: h.Name}
		}
		if h.UpdatedAt != nil {
			header[attrUpdatedAt] = &types.AttributeValueMemberS{Value: h.UpdatedAt.String()}
		}
	}
	if err := s.putItem(ctx, header); err != nil {
		return err
	}

	for seq, rec := range records {
		item := map[string]types.AttributeValue{
			s.table.PartitionKeyName: &types.AttributeValueMemberS{Value: pk},
			s.table.SortKeyName:      &types.AttributeValueMemberS{Value: recordSK(seq)},
			attrKind:                 &types.AttributeValueMemberS{Value: kindRecord},
			attrSeq:                  &types.AttributeValueMemberN{Value: strconv.Itoa(seq)},
			attrRecord:               rec,
		}
		if err := s.putItem(ctx, item); err != nil {
			return fmt.Errorf("record %d: %w", seq, err)
		}
	}
	return nil
}

// Delete removes every item of the asset at path. doc only selects the record
// type whose index map lays out the keys; a zero Document value is enough.
func (s *Store) Delete(ctx context.Context, path string, doc any) error {
	pk, _, _, err := keysFor(doc, path)
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

	for _, item := range items {
		_, err := s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
			TableName: &s.tableName,
			Key: map[string]types.AttributeValue{
				s.table.PartitionKeyName: item[s.table.PartitionKeyName],
				s.table.SortKeyName:      item[s.table.SortKeyName],
			},
		})
		if err != nil {
			return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
		}
	}
	return nil
}

// headerOf reads the header of a Document value or pointer.
func headerOf(doc any) (settingmodels.Header, bool) {
	if acc, ok := doc.(settingmodels.HeaderAccessor); ok {
		return acc.DocumentHeader(), true
	}
	v := reflect.ValueOf(doc)
	if v.Kind() != reflect.Struct {
		return settingmodels.Header{}, false
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	if acc, ok := p.Interface().(settingmodels.HeaderAccessor); ok {
		return acc.DocumentHeader(), true
	}
	return settingmodels.Header{}, false
}

func (s *Store) putItem(ctx context.Context, item map[string]types.AttributeValue) error {
	_, err := s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}
