package models

import (
	"sort"
	"strings"

	"dizimo/cents-csv/internal/pipelineerror"
)

// BucketEntry is one configured association between a cent key and a
// church name.
type BucketEntry struct {
	CentKey int    `yaml:"cents"`
	Church  string `yaml:"church"`
}

// BucketMapping is the caller-owned lookup table from cent key to church
// name. It is immutable once built; the pipeline never mutates it.
type BucketMapping struct {
	churches map[int]string
}

// NewBucketMapping validates the entries and builds a mapping. Every cent
// key must be in [0, 99] and unique, and every church name non-empty.
func NewBucketMapping(entries []BucketEntry) (BucketMapping, error) {
	churches := make(map[int]string, len(entries))
	for _, e := range entries {
		if e.CentKey < 0 || e.CentKey > 99 {
			return BucketMapping{}, &pipelineerror.MappingError{
				CentKey: e.CentKey,
				Reason:  "cent key must be between 0 and 99",
			}
		}
		if strings.TrimSpace(e.Church) == "" {
			return BucketMapping{}, &pipelineerror.MappingError{
				CentKey: e.CentKey,
				Reason:  "church name must not be empty",
			}
		}
		if _, exists := churches[e.CentKey]; exists {
			return BucketMapping{}, &pipelineerror.MappingError{
				CentKey: e.CentKey,
				Reason:  "cent key is configured more than once",
			}
		}
		churches[e.CentKey] = e.Church
	}
	return BucketMapping{churches: churches}, nil
}

// Lookup resolves a cent key to its church name.
func (m BucketMapping) Lookup(centKey int) (string, bool) {
	church, ok := m.churches[centKey]
	return church, ok
}

// Len returns the number of configured entries.
func (m BucketMapping) Len() int {
	return len(m.churches)
}

// Entries returns the configured associations sorted by cent key.
func (m BucketMapping) Entries() []BucketEntry {
	entries := make([]BucketEntry, 0, len(m.churches))
	for key, church := range m.churches {
		entries = append(entries, BucketEntry{CentKey: key, Church: church})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CentKey < entries[j].CentKey
	})
	return entries
}

// Clone returns an independent copy of the mapping. Callers that mutate
// their configuration mid-run should hand the pipeline a clone.
func (m BucketMapping) Clone() BucketMapping {
	churches := make(map[int]string, len(m.churches))
	for key, church := range m.churches {
		churches[key] = church
	}
	return BucketMapping{churches: churches}
}
