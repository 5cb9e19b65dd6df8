package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/katalvlaran/healthnet/logging"
)

// File headers, written verbatim as the first line.
const (
	CentersHeader       = "ID,Name,District,Latitude,Longitude,Capacity"
	ConnectionsHeader   = "FromID,ToID,DistanceKM,TimeMinutes,Description"
	RelationshipsHeader = "Health Center ID,Name,Connected Centers,Descriptions"
)

// File labels used in logs, metrics and RowError.
const (
	FileCenters       = "centers"
	FileConnections   = "connections"
	FileRelationships = "relationships"
)

// Sentinel errors for row parsing.
var (
	// ErrMalformedRow indicates a row with missing or non-numeric fields.
	ErrMalformedRow = errors.New("store: malformed row")

	// ErrInvalidRow indicates a row that parsed but failed validation.
	ErrInvalidRow = errors.New("store: invalid row")
)

// RowError describes one skipped row.
type RowError struct {
	File string
	Line int // 1-based, header is line 1
	Text string
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("store: %s line %d %q: %v", e.File, e.Line, e.Text, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// LoadReport summarizes a load.
type LoadReport struct {
	Centers     int
	Connections int
	Skipped     []*RowError
}

// Paths locates the three files.
type Paths struct {
	Centers       string
	Connections   string
	Relationships string
}

// Observer receives store events; *metrics.Registry implements it.
type Observer interface {
	RecordStoreWrite(file string, err error)
	RecordSkippedRows(file string, n int)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for skipped rows and writes.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver registers an Observer.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.obs = o
	}
}

// Store reads and writes the network files.
type Store struct {
	fs       afero.Fs
	paths    Paths
	log      logrus.FieldLogger
	obs      Observer
	validate *validator.Validate
}

// New creates a Store over fs.
func New(fs afero.Fs, paths Paths, opts ...Option) *Store {
	s := &Store{
		fs:       fs,
		paths:    paths,
		log:      logging.Discard(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Paths returns the configured file locations.
func (s *Store) Paths() Paths { return s.paths }

// centerRecord and connectionRecord carry the validation rules of a row.
type centerRecord struct {
	ID       int `validate:"gte=0"`
	Capacity int
}

type connectionRecord struct {
	From     int     `validate:"gte=0"`
	To       int     `validate:"gte=0,nefield=From"`
	Distance float64 `validate:"gte=0"`
}

func (s *Store) check(rec any) error {
	if err := s.validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %s", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidRow, strings.Join(msgs, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}

	return nil
}
