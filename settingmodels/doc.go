/*
Package settingmodels defines the data structures shared by setting stores and registries.

Key Types:

Document:
The decoded form of a setting asset. Stores decode into a *Document[R] where R is
the registry's record type:

	var doc settingmodels.Document[colorsetting.ColorData]
	err := store.Load(ctx, "Setting/ColorSetting", &doc)

	// YAML form read by the file store
	name: ColorSetting
	updatedAt: "2025-03-01T10:00:00.000Z"
	records:
	  - colorType: Red
	    targetColor: "#FF0000"
	  - null            # empty slot, skipped when indexing

LoadOptions:
Paging and retry behavior for remote stores:

	opts := []LoadOption{
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithRetryBackoff(500 * time.Millisecond),
	    WithProgressHandler(progressFunc),
	}
*/
package settingmodels
