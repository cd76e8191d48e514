package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locobot/internal/domain"
)

type staticRepo struct {
	locale string
	values map[string]string
}

func (r *staticRepo) Locale() string { return r.locale }

func (r *staticRepo) String(key string) string {
	if v, ok := r.values[key]; ok {
		return v
	}
	return key
}

func (r *staticRepo) Format(key string, _ map[string]any) string { return r.String(key) }

func TestGetBeforeInit(t *testing.T) {
	h := New()

	impl, err := h.Get()
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
	assert.Nil(t, impl)
	assert.Equal(t, Uninitialized, h.State())

	_, ok := h.Lookup()
	assert.False(t, ok)
}

func TestInitThenGetReturnsSameReference(t *testing.T) {
	h := New()
	a := &staticRepo{locale: "en", values: map[string]string{"hello": "Hello"}}

	require.NoError(t, h.Init(a))

	got, err := h.Get()
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.Same(t, a, h.MustGet())
	assert.Equal(t, Bound, h.State())
	assert.Equal(t, "Hello", got.String("hello"))
}

func TestSecondInitFailsAndKeepsFirstBinding(t *testing.T) {
	h := New()
	a := &staticRepo{locale: "en"}
	b := &staticRepo{locale: "fr"}

	require.NoError(t, h.Init(a))
	assert.ErrorIs(t, h.Init(b), domain.ErrAlreadyInitialized)
	assert.ErrorIs(t, h.Init(a), domain.ErrAlreadyInitialized)

	got, err := h.Get()
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestInitRejectsNil(t *testing.T) {
	h := New()

	assert.ErrorIs(t, h.Init(nil), domain.ErrNilRepository)
	assert.Equal(t, Uninitialized, h.State())
}

func TestInitRejectsTypedNil(t *testing.T) {
	h := New()
	var typed *staticRepo

	assert.ErrorIs(t, h.Init(typed), domain.ErrNilRepository)
	assert.Equal(t, Uninitialized, h.State())

	a := &staticRepo{locale: "en"}
	require.NoError(t, h.Init(a))
	assert.Same(t, a, h.MustGet())
}

func TestMustGetPanicsWhenUnbound(t *testing.T) {
	h := New()

	assert.PanicsWithError(t, domain.ErrNotInitialized.Error(), func() {
		h.MustGet()
	})
}

func TestZeroValueHolderIsUsable(t *testing.T) {
	var h Holder
	a := &staticRepo{locale: "en"}

	_, err := h.Get()
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
	require.NoError(t, h.Init(a))
	assert.Same(t, a, h.MustGet())
}

func TestConcurrentInitBindsExactlyOnce(t *testing.T) {
	h := New()
	const n = 32
	repos := make([]*staticRepo, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		repos[i] = &staticRepo{locale: "en"}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = h.Init(repos[i])
		}(i)
	}
	wg.Wait()

	winners := 0
	var winner *staticRepo
	for i, err := range errs {
		if err == nil {
			winners++
			winner = repos[i]
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadyInitialized)
	}
	require.Equal(t, 1, winners)
	assert.Same(t, winner, h.MustGet())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "bound", Bound.String())
}

// The process-wide holder can only be bound once per test binary, so every
// assertion about it lives in this single test.
func TestProcessWideHolder(t *testing.T) {
	_, err := Str()
	require.ErrorIs(t, err, domain.ErrNotInitialized)
	assert.Panics(t, func() { MustStr() })

	a := &staticRepo{locale: "en"}
	b := &staticRepo{locale: "fr"}
	require.NoError(t, InitInstance(a))
	assert.ErrorIs(t, InitInstance(b), domain.ErrAlreadyInitialized)

	got, err := Str()
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.Same(t, a, MustStr())
	assert.Same(t, a, Default().MustGet())
}
