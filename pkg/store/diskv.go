// Package store persists the trip as a single record in a diskv directory.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tabi/pkg/trip"
)

// Persistence defines the persistence contract for the trip record.
type Persistence interface {
	// Load returns the saved trip, or the seed trip when nothing usable is
	// stored. It never fails; problems are logged.
	Load(ctx context.Context) *trip.Data
	// Save writes the whole trip. Failures are logged and returned so the
	// caller can report an unsaved state; nothing is retried.
	Save(d *trip.Data) error
	Watch(ctx context.Context) (<-chan Event, error)
	Path() string
}

// Option customizes Open.
type Option func(*persistence)

// WithLogger sends persistence diagnostics to l instead of stderr.
func WithLogger(l *log.Logger) Option {
	return func(p *persistence) {
		if l != nil {
			p.log = l
		}
	}
}

// WithSeed overrides the trip returned when no record exists.
func WithSeed(seed func() *trip.Data) Option {
	return func(p *persistence) {
		if seed != nil {
			p.seed = seed
		}
	}
}

// Open creates a Persistence backed by diskv using the provided config.
func Open(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	key := strings.TrimSpace(cfg.Key())
	if key == "" {
		key = defaultKey
	}

	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, tempDirName),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		key:      key,
		log:      log.New(os.Stderr, "store: ", 0),
		seed:     trip.Seed,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

const tempDirName = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
	key      string
	log      *log.Logger
	seed     func() *trip.Data
}

func (p *persistence) Load(_ context.Context) *trip.Data {
	if !p.d.Has(p.key) {
		p.log.Printf("no saved trip at %s, using the built-in trip", p.Path())
		return p.seededTrip()
	}

	// Read around the cache: another process may have rewritten the file.
	rc, err := p.d.ReadStream(p.key, true)
	if err != nil {
		p.log.Printf("read %s: %v, using the built-in trip", p.key, err)
		return p.seededTrip()
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		p.log.Printf("read %s: %v, using the built-in trip", p.key, err)
		return p.seededTrip()
	}

	d, schema, err := decodeRecord(b)
	if err != nil {
		p.log.Printf("decode %s: %v, using the built-in trip", p.key, err)
		return p.seededTrip()
	}
	if schema < CurrentSchema {
		p.log.Printf("migrating %s from schema %d to %d on next save", p.key, schema, CurrentSchema)
	}
	return d
}

func (p *persistence) seededTrip() *trip.Data {
	d := p.seed()
	d.Normalize()
	return d
}

func (p *persistence) Save(d *trip.Data) error {
	if d == nil {
		return errors.New("store: nothing to save")
	}
	data, err := encodeRecord(d)
	if err != nil {
		p.log.Printf("encode %s: %v", p.key, err)
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := p.d.Write(p.key, data); err != nil {
		p.log.Printf("write %s: %v, changes are kept in memory only", p.key, err)
		return fmt.Errorf("store: write: %w", err)
	}
	return nil
}

func (p *persistence) Path() string {
	pk := keyToPathTransform(p.key)
	return filepath.Join(append([]string{p.basePath}, append(pk.Path, pk.FileName)...)...)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
