// Package store loads and saves the church mapping configuration.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"dizimo/cents-csv/internal/logging"
	"dizimo/cents-csv/internal/models"

	"gopkg.in/yaml.v3"
)

// mappingFile is the on-disk YAML shape:
//
//	buckets:
//	  - cents: 1
//	    church: "Igreja Alpha"
type mappingFile struct {
	Buckets []models.BucketEntry `yaml:"buckets"`
}

// MappingStore manages the church mapping YAML file.
type MappingStore struct {
	File   string
	logger logging.Logger
}

// NewMappingStore creates a store for the given mapping file. An empty
// file name falls back to "buckets.yaml" resolved from the standard
// locations.
func NewMappingStore(file string, logger logging.Logger) *MappingStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &MappingStore{File: file, logger: logger}
}

// FindConfigFile looks for a mapping file in the standard locations:
// the path itself, ./config, and ~/.config/cents-csv.
func (s *MappingStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "cents-csv", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// Load reads and validates the mapping. The resulting BucketMapping is
// caller-owned; the pipeline never mutates it.
func (s *MappingStore) Load() (models.BucketMapping, error) {
	filename := s.File
	if filename == "" {
		filename = "buckets.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		return models.BucketMapping{}, fmt.Errorf("church mapping file not found: %s", filename)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return models.BucketMapping{}, fmt.Errorf("error reading church mapping file: %w", err)
	}

	var file mappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return models.BucketMapping{}, fmt.Errorf("error parsing church mapping file %s: %w", filePath, err)
	}

	mapping, err := models.NewBucketMapping(file.Buckets)
	if err != nil {
		return models.BucketMapping{}, fmt.Errorf("invalid church mapping in %s: %w", filePath, err)
	}

	s.logger.Debug("Loaded church mapping",
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "entries", Value: mapping.Len()})

	return mapping, nil
}

// Save writes the mapping back to the store's file, creating parent
// directories as needed.
func (s *MappingStore) Save(mapping models.BucketMapping) error {
	filename := s.File
	if filename == "" {
		filename = "buckets.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		filePath = filename
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	data, err := yaml.Marshal(mappingFile{Buckets: mapping.Entries()})
	if err != nil {
		return fmt.Errorf("error marshaling church mapping: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing church mapping: %w", err)
	}

	s.logger.Debug("Saved church mapping",
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "entries", Value: mapping.Len()})

	return nil
}
