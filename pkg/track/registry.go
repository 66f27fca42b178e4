// Package track holds the static circuit registry. The built-in data
// covers the 2025 calendar; an external file may override it.
package track

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/apexaero/aerosim-service-go/pkg/model"
)

//go:embed tracks.yaml
var builtinTracks []byte

var ErrTrackNotFound = fmt.Errorf("track not found")

type trackFile struct {
	Tracks []*model.TrackInfo `yaml:"tracks"`
}

// Registry resolves track descriptors by name. Reads are lock free apart
// from an RWMutex shared with the optional file watcher reload.
type Registry struct {
	mu     sync.RWMutex
	tracks []*model.TrackInfo // registry order preserved for partial matching
	source string             // external file, empty means built-in data
}

type RegistryOption func(*Registry)

// WithTrackFile replaces the built-in track set with an external yaml file.
func WithTrackFile(path string) RegistryOption {
	return func(r *Registry) { r.source = path }
}

func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	ret := &Registry{}
	for _, opt := range opts {
		opt(ret)
	}
	if err := ret.load(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (r *Registry) load() error {
	data := builtinTracks
	if r.source != "" {
		var err error
		data, err = os.ReadFile(r.source)
		if err != nil {
			return fmt.Errorf("reading track file: %w", err)
		}
	}
	var tf trackFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("parsing track data: %w", err)
	}
	if len(tf.Tracks) == 0 {
		return fmt.Errorf("track data contains no tracks")
	}
	for _, t := range tf.Tracks {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	r.mu.Lock()
	r.tracks = tf.Tracks
	r.mu.Unlock()
	return nil
}

// Get resolves a track by exact key first, then by case-insensitive
// substring against key and full circuit name. Resolution failure is
// ErrTrackNotFound carrying the attempted name.
func (r *Registry) Get(name string) (*model.TrackInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := lo.Find(r.tracks, func(t *model.TrackInfo) bool {
		return t.Key == name
	}); ok {
		return t, nil
	}

	lower := strings.ToLower(name)
	if t, ok := lo.Find(r.tracks, func(t *model.TrackInfo) bool {
		return strings.Contains(strings.ToLower(t.Key), lower) ||
			strings.Contains(strings.ToLower(t.Name), lower)
	}); ok {
		return t, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrTrackNotFound, name)
}

// All returns the tracks in registry order.
func (r *Registry) All() []*model.TrackInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ret := make([]*model.TrackInfo, len(r.tracks))
	copy(ret, r.tracks)
	return ret
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.tracks, func(t *model.TrackInfo, _ int) string {
		return t.Key
	})
}
