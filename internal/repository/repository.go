// Package repository binds the string repository used by shared code.
//
// A Holder starts empty, is bound exactly once by Init and is read any number
// of times afterwards. Application code should receive a *Holder through its
// constructors; the package-level InitInstance/Str pair operates on a single
// process-wide Holder for startup code that cannot pass one around.
package repository

import (
	"reflect"
	"sync"

	"locobot/internal/domain"
	"locobot/internal/ports/output"
)

// State reports whether a Holder has been bound.
type State int

const (
	// Uninitialized is the state of a Holder before Init succeeds.
	Uninitialized State = iota
	// Bound is the state of a Holder after Init succeeds; it never changes again.
	Bound
)

func (s State) String() string {
	switch s {
	case Bound:
		return "bound"
	default:
		return "uninitialized"
	}
}

// Holder is a set-once binding to an output.StringRepository.
// The zero value is an unbound Holder ready to use.
type Holder struct {
	mu   sync.RWMutex
	impl output.StringRepository
}

// New returns an unbound Holder.
func New() *Holder {
	return &Holder{}
}

// Init binds impl. It fails with domain.ErrNilRepository when impl is nil,
// including a nil pointer wrapped in the interface, and with
// domain.ErrAlreadyInitialized if the holder is already bound, leaving the
// existing binding untouched.
func (h *Holder) Init(impl output.StringRepository) error {
	if isNil(impl) {
		return domain.ErrNilRepository
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.impl != nil {
		return domain.ErrAlreadyInitialized
	}
	h.impl = impl
	return nil
}

// Get returns the bound repository, or domain.ErrNotInitialized before Init.
func (h *Holder) Get() (output.StringRepository, error) {
	impl, ok := h.Lookup()
	if !ok {
		return nil, domain.ErrNotInitialized
	}
	return impl, nil
}

// Lookup is the comma-ok form of Get.
func (h *Holder) Lookup() (output.StringRepository, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.impl, h.impl != nil
}

// MustGet is like Get but panics when the holder is unbound.
func (h *Holder) MustGet() output.StringRepository {
	impl, err := h.Get()
	if err != nil {
		panic(err)
	}
	return impl
}

// State reports whether Init has bound the holder.
func (h *Holder) State() State {
	if _, ok := h.Lookup(); ok {
		return Bound
	}
	return Uninitialized
}

func isNil(impl output.StringRepository) bool {
	if impl == nil {
		return true
	}
	v := reflect.ValueOf(impl)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

var global Holder

// Default returns the process-wide Holder.
func Default() *Holder { return &global }

// InitInstance binds the process-wide Holder. See Holder.Init.
func InitInstance(impl output.StringRepository) error {
	return global.Init(impl)
}

// Str returns the repository bound to the process-wide Holder.
func Str() (output.StringRepository, error) {
	return global.Get()
}

// MustStr is like Str but panics when InitInstance has not been called.
func MustStr() output.StringRepository {
	return global.MustGet()
}
