// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"errors"
	"slices"
	"testing"
)

// mockReader is a test reader implementation
type mockReader struct {
	name string
}

func (r *mockReader) ReadDataset(path string) (*Dataset, error) {
	return &Dataset{SampleRate: 48000}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry[DatasetReader]()
	reader := &mockReader{name: "sofa"}

	registry.Register("sofa", reader)

	got, ok := registry.Get("sofa")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered reader")
	}

	if got != reader {
		t.Error("Registry.Get() returned different reader instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry[DatasetReader]()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry[DatasetReader]()
	first := &mockReader{name: "first"}
	second := &mockReader{name: "second"}

	registry.Register("sofa", first)
	registry.Register("sofa", second)

	got, ok := registry.Get("sofa")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != second {
		t.Error("Registry.Get() did not return the overwritten reader")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry[DatasetReader]()
	registry.Register("sofa", &mockReader{})
	registry.Register("dir", &mockReader{})

	if got := registry.Formats(); !slices.Equal(got, []string{"dir", "sofa"}) {
		t.Errorf("Registry.Formats() = %v, want [dir sofa]", got)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry[DatasetReader]()
	reader := &mockReader{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", reader)
			done <- true
		}()
	}

	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != reader {
		t.Error("Registry returned wrong reader after concurrent operations")
	}
}

func TestDatasetReaderFunc(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	var gotPath string

	var r DatasetReader = DatasetReaderFunc(func(path string) (*Dataset, error) {
		gotPath = path
		return nil, errBoom
	})

	if _, err := r.ReadDataset("a.sofa"); !errors.Is(err, errBoom) {
		t.Errorf("ReadDataset() error = %v, want %v", err, errBoom)
	}
	if gotPath != "a.sofa" {
		t.Errorf("ReadDataset() path = %q, want a.sofa", gotPath)
	}
}
