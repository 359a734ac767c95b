/*
Package ddb provides a DynamoDB implementation of the assetstore.Store interface.

Table Layout:
Every asset occupies one partition. The header item carries the asset name and
update time; each record slot is its own item holding the marshaled record (or
NULL for an empty slot) and its sequence number:

	PK                        SK              Kind    Seq  Record
	SETTING#Setting/ColorSetting  HEADER          header
	SETTING#Setting/ColorSetting  RECORD#000000   record  0    {colorType: "Red", ...}
	SETTING#Setting/ColorSetting  RECORD#000001   record  1    NULL

Key templates come from the registry package and may be overridden per record
type with registry.RegisterIndexMap.

Loading:
Load pages through the partition with configurable page size and retries:

	store, err := ddb.NewDynamodbStore(ctx, ddb.ClientConfig{Region: "us-east-1"}, "settings",
	    ddb.WithLoadOptions(
	        settingmodels.WithPageSize(50),
	        settingmodels.WithMaxRetries(3),
	    ),
	)

Writing:
Put replaces an asset with the records of a settingmodels.Document; it is used by
"settingctl import" to seed a table from YAML files.
*/
package ddb
