/*
Package errors provides semantic error types for the settingstore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound          = errors.New("setting asset not found")
	    ErrAlreadyExists     = errors.New("already exists")
	    ErrInvalidInput      = errors.New("invalid input")
	    ErrUnsupportedFormat = errors.New("unsupported asset format")
	    ErrNoIndexMap        = errors.New("no index map found for type")
	)

Usage:

	var doc settingmodels.Document[colorsetting.ColorData]
	if err := store.Load(ctx, colorsetting.Path, &doc); err != nil {
	    if errors.IsNotFound(err) {
	        // the asset is absent; registries degrade to their fallback policy
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("filestore", "Setting/ColorSetting")
	err := errors.NewValidationError("colorType", "unknown name")
	err := errors.NewFormatError("Setting/ColorSetting.toml", ".toml")

Lookups on a setting registry never return these errors; they surface only
from stores, configuration, and the command line tool.
*/
package errors
