// Package clipboard is the wizard's port to the system clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Unsupported reports whether the host has no usable clipboard utility.
func Unsupported() bool {
	return clipboard.Unsupported
}

// Recorder captures writes in memory. Err, when set, is returned from every
// write and nothing is recorded.
type Recorder struct {
	mu     sync.Mutex
	Err    error
	writes []string
}

// WriteAll implements Writer.
func (r *Recorder) WriteAll(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.writes = append(r.writes, text)
	return nil
}

// Writes returns every successfully written value in order.
func (r *Recorder) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.writes...)
}

// Last returns the most recent write, or "" when there was none.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return ""
	}
	return r.writes[len(r.writes)-1]
}
