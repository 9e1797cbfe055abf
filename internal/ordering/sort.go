package ordering

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Compare orders items by rank ascending with unranked items last, then by id.
func Compare(a, b Item) int {
	switch {
	case a.Rank != nil && b.Rank != nil:
		if c := cmp.Compare(*a.Rank, *b.Rank); c != 0 {
			return c
		}
	case a.Rank != nil:
		return -1
	case b.Rank != nil:
		return 1
	}

	return cmp.Compare(a.ID, b.ID)
}

// Sort orders records in display order. key extracts the ordering view of a record.
func Sort[T any](records []T, key func(T) Item) {
	slices.SortStableFunc(records, func(a, b T) int {
		return Compare(key(a), key(b))
	})
}

// ParseSortValue parses an explicitly supplied sort value. Anything that is not an integer
// leaves prev in place.
func ParseSortValue(raw string, prev int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return prev
	}

	return v
}
