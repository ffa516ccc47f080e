package repository

import (
	"github.com/okian/ats/pkg/logger"
)

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithLogger sets the logger used while loading.
func WithLogger(l logger.Logger) Option {
	return func(s *FileStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces the generator used for records without an id.
func WithIDGenerator(gen func() string) Option {
	return func(s *FileStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithDateLayout sets the time layout for date fields. Default is 2006-01-02.
func WithDateLayout(layout string) Option {
	return func(s *FileStore) {
		if layout != "" {
			s.dateLayout = layout
		}
	}
}
