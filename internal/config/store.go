package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/halvard/mirrormenu/internal/logging"
)

// Store owns the configuration document for the process lifetime. It is the
// single mutable source of truth: callers mutate Doc in place, then Save.
type Store struct {
	path string

	// Doc is the live document. Nil until Load.
	Doc *Document

	// lastSaved mirrors what is on disk, for the no-op save check.
	lastSaved *Document
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document from disk. A missing file seeds the default
// document. A file that cannot be parsed is backed up under a timestamped
// name and replaced by a fresh default; regeneration happens at most once
// per call.
func (s *Store) Load() error {
	doc, err := s.read()
	if err == nil {
		s.Doc = doc
		s.lastSaved = doc.clone()
		return nil
	}
	if os.IsNotExist(err) {
		s.Doc = NewDocument()
		s.lastSaved = nil
		return s.Save()
	}

	// Corrupt file: keep the evidence, regenerate, retry once.
	backup := fmt.Sprintf("%s.corrupt-%s", s.path, time.Now().Format("20060102-150405"))
	if renameErr := os.Rename(s.path, backup); renameErr != nil {
		return fmt.Errorf("failed to back up corrupt config: %w", renameErr)
	}
	logging.Warn("Config file was corrupt, regenerated",
		zap.String("backup", backup),
		zap.NamedError("parse_error", err),
	)

	s.Doc = NewDocument()
	s.lastSaved = nil
	if err := s.Save(); err != nil {
		return err
	}

	doc, err = s.read()
	if err != nil {
		return fmt.Errorf("failed to load regenerated config: %w", err)
	}
	s.Doc = doc
	s.lastSaved = doc.clone()
	return nil
}

func (s *Store) read() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	doc.normalize()
	return &doc, nil
}

// Save writes the document to disk unless it is identical to the last
// persisted state. The write is atomic: temp file, then rename.
func (s *Store) Save() error {
	if s.Doc == nil {
		return fmt.Errorf("no document loaded")
	}
	if s.lastSaved != nil && reflect.DeepEqual(s.Doc, s.lastSaved) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.Doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	s.lastSaved = s.Doc.clone()
	logging.Debug("Config saved", zap.String("path", s.path))
	return nil
}
