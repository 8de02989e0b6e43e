package codec

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Registry manages the available codecs
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec // key can be either name or alias
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

var defaultRegistry = NewRegistry()

// Register registers a codec under its name and aliases
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec by name or alias
func Get(name string) (Codec, error) {
	return defaultRegistry.Get(name)
}

// List returns all registered codecs
func List() []Codec {
	return defaultRegistry.List()
}

// Register registers a codec under its name and aliases
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[codec.Name()] = codec
	for _, alias := range codec.Aliases() {
		r.codecs[alias] = codec
	}
}

// Get retrieves a codec by name or alias
func (r *Registry) Get(name string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[name]
	if !ok {
		return nil, errors.Wrapf(ErrCodecNotFound, "%q", name)
	}
	return codec, nil
}

// List returns all registered codecs (deduplicated, sorted by name)
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	codecs := make([]Codec, 0)

	for _, codec := range r.codecs {
		if !seen[codec.Name()] {
			seen[codec.Name()] = true
			codecs = append(codecs, codec)
		}
	}

	sort.Slice(codecs, func(i, j int) bool {
		return codecs[i].Name() < codecs[j].Name()
	})
	return codecs
}
