/*
Package settingstore provides process-wide setting registries for a game
engine: themed colors with their materials, and shared animation curves.

Each registry is a lazily loaded singleton over one asset at a fixed path.
The first lookup loads the asset from the process default asset store and
indexes its records by type; every later lookup is answered from memory.

	// Pick the asset store once at startup
	cfg, err := settingstore.ReadConfig("settingstore.yaml", ".env")
	if err != nil {
	    return err
	}
	if _, err := settingstore.Install(ctx, cfg); err != nil {
	    return err
	}

	// Query from anywhere
	c := colorsetting.GetColor(colorsetting.Red)
	v := curvesetting.Evaluate(curvesetting.EaseInOut, 0.5)

Lookups never fail. An unregistered type falls back to the first record of
the asset and logs a warning; an empty or missing asset yields the zero value
and logs an error.

Packages:
  - setting: the generic registry, lookup policy and diagnostics
  - colorsetting, curvesetting: the two registries
  - assetstore: the Store contract and the process default store
  - assetstore/filestore: YAML or JSON assets under a resource directory
  - assetstore/ddb: assets stored in DynamoDB
  - assetstore/mock: in-memory store for tests
  - registry: asset formats and DynamoDB key templates
  - settingmodels: the asset document and load options
  - errors: semantic error types

Backends are selected by name through RegisterBackend and Open; "file",
"dynamodb" and "memory" are built in.
*/
package settingstore
