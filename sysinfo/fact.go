package sysinfo

// Fact is one piece of host information that may or may not have been
// obtained. The zero value is unavailable.
type Fact[T any] struct {
	value   T
	present bool
}

// Present wraps a value that was successfully read.
func Present[T any](v T) Fact[T] {
	return Fact[T]{value: v, present: true}
}

// Unavailable returns an absent fact.
func Unavailable[T any]() Fact[T] {
	return Fact[T]{}
}

// Get returns the value and whether it is present.
func (f Fact[T]) Get() (T, bool) {
	return f.value, f.present
}

// Ok reports whether the fact is present.
func (f Fact[T]) Ok() bool { return f.present }

// Resolve tries each source in order and returns the first present fact.
// Sources never fail loudly; a failed query is simply an unavailable fact.
// Every source is called at most once and sources after the first hit are
// not called at all.
func Resolve[T any](sources ...func() Fact[T]) Fact[T] {
	for _, src := range sources {
		if src == nil {
			continue
		}
		if f := src(); f.present {
			return f
		}
	}
	return Unavailable[T]()
}

// Map applies fn to a present fact and passes absence through.
func Map[T, U any](f Fact[T], fn func(T) U) Fact[U] {
	v, ok := f.Get()
	if !ok {
		return Unavailable[U]()
	}
	return Present(fn(v))
}

// FromResult adapts a (value, error) pair from an external query.
func FromResult[T any](v T, err error) Fact[T] {
	if err != nil {
		return Unavailable[T]()
	}
	return Present(v)
}

// NonEmpty treats an empty string as unavailable.
func NonEmpty(s string) Fact[string] {
	if s == "" {
		return Unavailable[string]()
	}
	return Present(s)
}
