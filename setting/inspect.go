/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package setting

// Report summarizes a record list the way the index sees it.
type Report[K comparable] struct {
	// Records is the length of the list, nil slots included.
	Records int
	// Nulls holds the positions of nil slots.
	Nulls []int
	// Keys holds the distinct keys in first-seen order.
	Keys []K
	// Shadowed maps each duplicated key to the positions of the records the
	// index ignores; the last occurrence is the one that answers lookups.
	Shadowed map[K][]int
}

// Clean reports whether the list has neither nil slots nor duplicate keys.
func (rep Report[K]) Clean() bool {
	return len(rep.Nulls) == 0 && len(rep.Shadowed) == 0
}

// Inspect builds a Report for records.
func Inspect[K comparable, R any](records []*R, keyOf KeyFunc[K, R]) Report[K] {
	rep := Report[K]{
		Records:  len(records),
		Shadowed: make(map[K][]int),
	}
	last := make(map[K]int, len(records))
	for i, rec := range records {
		if rec == nil {
			rep.Nulls = append(rep.Nulls, i)
			continue
		}
		k := keyOf(rec)
		if prev, dup := last[k]; dup {
			rep.Shadowed[k] = append(rep.Shadowed[k], prev)
		} else {
			rep.Keys = append(rep.Keys, k)
		}
		last[k] = i
	}
	return rep
}
