/*
Package filestore provides a resource-directory implementation of assetstore.Store.

Assets are addressed by extension-less paths relative to the store root, the
same way the engine addresses its resources:

	store := filestore.New("Resources")
	var doc settingmodels.Document[colorsetting.ColorData]
	err := store.Load(ctx, "Setting/ColorSetting", &doc)
	// reads Resources/Setting/ColorSetting.yaml, .yml or .json

Decoders come from the registry package, so additional formats can be
registered without touching the store.
*/
package filestore
