/*
Package assetstore defines the store contract that setting registries load from.

The interface is deliberately small:

	type Store interface {
	    Load(ctx context.Context, path string, out any) error
	}

out is always a pointer to a settingmodels.Document[R]. An absent asset is not
exceptional: stores report it with an error matching errors.ErrNotFound and the
registry degrades to its fallback policy.

Implementations:
  - filestore: resource directory of YAML or JSON files
  - ddb: DynamoDB single-partition-per-asset layout
  - mock: in-memory store for testing

The process default store (SetDefault / Default) backs the colorsetting and
curvesetting singletons. Until one is installed every load reports the asset as
absent.
*/
package assetstore
