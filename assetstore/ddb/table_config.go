/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

// TableConfig holds the key attribute names of the settings table
type TableConfig struct {
	// PartitionKeyName is the partition key attribute name (e.g., "PK")
	PartitionKeyName string
	// SortKeyName is the sort key attribute name (e.g., "SK")
	SortKeyName string
}

// DefaultTableConfig is used when a Store is created without WithTableConfig
var DefaultTableConfig = TableConfig{
	PartitionKeyName: "PK",
	SortKeyName:      "SK",
}

// Attribute names written on every item besides the key attributes
const (
	attrKind      = "Kind"
	attrSeq       = "Seq"
	attrRecord    = "Record"
	attrName      = "Name"
	attrUpdatedAt = "UpdatedAt"

	kindHeader = "header"
	kindRecord = "record"
)
