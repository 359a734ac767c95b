/*
Package setting implements the lazily loaded, key-indexed setting registry that
colorsetting and curvesetting specialize.

A Registry is bound to a store and a fixed asset path. The first lookup (or an
explicit Init) loads the record list exactly once and indexes it by key:

	reg := setting.New(store, "Setting/ColorSetting",
	    func(d *ColorData) ColorType { return d.ColorType },
	    setting.WithName("ColorSetting"),
	    setting.WithSubject("color"),
	)

Lookup Policy:
Lookups always return a value. Resolve applies the policy and reports degraded
answers to the diagnostic Sink (slog.Default() unless WithSink is given):

  - registered key: the key's record, no diagnostic
  - unregistered key, usable records present: the first record, warning
  - no usable records (absent asset, empty list, only nil slots): zero value, error

Lookup returns the same answer as a Result with an Outcome (Hit, Fallback,
Empty) and emits nothing, for callers that want to detect degraded lookups.

Indexing:
Nil slots are skipped and, when a key repeats, the later record wins. Inspect
reports both conditions.

Failure Permanence:
A load that fails is not retried. The registry stays usable and answers every
lookup with the empty-list policy for the rest of its life.

Singletons:
Lazy wraps sync.Once for process-wide instances built on first access.
*/
package setting
