// Package types holds small generic value types shared across layers
package types

// Optional is one field of a partial update. It has three states:
//
//   - absent: the zero value, the field is left untouched
//   - null:   the field is cleared
//   - value:  the field is set to Value
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional that sets the field to v
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional that clears the field
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// FromPtr maps nil to Null and anything else to Some
func FromPtr[T any](v *T) Optional[T] {
	if v == nil {
		return Null[T]()
	}
	return Some(*v)
}

// IsSet reports whether the field takes part in the update (null or value)
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsNull reports whether the field is being cleared
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// Get returns the value and whether one is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set && !o.null
}

// Ptr returns a pointer to the value, or nil when the field is absent or null
func (o Optional[T]) Ptr() *T {
	if !o.set || o.null {
		return nil
	}
	v := o.value
	return &v
}

// Apply writes the update into dst when the field is set. Null stores nil.
func (o Optional[T]) Apply(dst **T) {
	if !o.set {
		return
	}
	*dst = o.Ptr()
}
