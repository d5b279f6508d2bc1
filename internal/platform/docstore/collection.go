package docstore

import (
	"context"
	"sort"
)

// FetchCollection reads a keyed-object collection document and returns its
// records as a slice ordered by key. An absent document yields an empty slice.
func FetchCollection[T any](ctx context.Context, c *Client, name string) ([]T, error) {
	var keyed map[string]T
	if err := c.GetJSON(ctx, name, &keyed); err != nil {
		return nil, err
	}
	if len(keyed) == 0 {
		return []T{}, nil
	}

	keys := make([]string, 0, len(keyed))
	for key := range keyed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([]T, 0, len(keys))
	for _, key := range keys {
		records = append(records, keyed[key])
	}
	return records, nil
}

// ReplaceCollection overwrites the collection document with the given records,
// keyed by their identifiers. Replacing with an empty slice clears the
// collection by writing an empty object.
func ReplaceCollection[T any](ctx context.Context, c *Client, name string, records []T, idOf func(T) string) error {
	keyed := make(map[string]T, len(records))
	for _, record := range records {
		keyed[idOf(record)] = record
	}
	return c.PutJSON(ctx, name, keyed)
}
