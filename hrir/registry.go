// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"io"
	"slices"
	"sync"
)

// DatasetReader loads a Dataset from a file or directory path.
type DatasetReader interface {
	ReadDataset(path string) (*Dataset, error)
}

// DatasetReaderFunc adapts a function to DatasetReader.
type DatasetReaderFunc func(path string) (*Dataset, error)

func (f DatasetReaderFunc) ReadDataset(path string) (*Dataset, error) { return f(path) }

// Response is one stereo impulse response decoded from an audio file,
// with samples in [-1, 1].
type Response struct {
	SampleRate int
	Left       []float64
	Right      []float64
}

// ResponseDecoder decodes a single stereo impulse response file.
type ResponseDecoder interface {
	DecodeResponse(r io.Reader) (*Response, error)
}

// Registry maps format keys (e.g., "sofa", "wav") to readers or decoders.
type Registry[T any] struct {
	items map[string]T

	mtx *sync.Mutex
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
		mtx:   &sync.Mutex{},
	}
}

func (r *Registry[T]) Register(format string, v T) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.items[format] = v
}

func (r *Registry[T]) Get(format string) (T, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	v, ok := r.items[format]
	return v, ok
}

// Formats lists registered format keys in sorted order.
func (r *Registry[T]) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
