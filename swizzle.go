// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vecmath

import (
	"fmt"
	"strings"

	"cogentcore.org/vecmath/base/errors"
)

// A swizzle view aliases the storage of a parent vector through an ordered
// tuple of component indices, which may repeat. [Swizzle2], [Swizzle3] and
// [Swizzle4] are the views of degree 2, 3 and 4. They are obtained from the
// generated accessor methods of each vector (v.XY(), v.BGR(), v.STTS(), ...)
// or by name at runtime (v.Swizzle3("bgr")).
//
// Reading a view with Vector returns a new vector whose component i is
// the parent component at index i of the tuple. Writing a view with Set
// stores component i of the given vector into the parent at index i of the
// tuple, in tuple order: when an index repeats, the last write wins, so
// setting v.XX() to (a, b) leaves X equal to b. SetChecked instead rejects
// tuples with repeated indices. The in place arithmetic methods (SetAdd,
// SetMulScalar, ...) compute the new value from the current view and store
// it with Set, under the same rule. The other arithmetic methods return
// new vectors and never modify the parent.

var (
	// ErrRepeatedComponent is returned by SetChecked when a swizzle
	// view selects the same component more than once.
	ErrRepeatedComponent = errors.New("vecmath: swizzle selects a component more than once")

	// ErrInvalidSwizzle is returned when a swizzle name is not valid for a vector.
	ErrInvalidSwizzle = errors.New("vecmath: invalid swizzle")
)

// positionLabels are the labels used in swizzle view names.
const positionLabels = "xyzw"

// scatter writes src[i] into dst[idx[i]] in order.
func scatter[T Number](dst []T, idx []int, src []T) {
	for i, j := range idx {
		dst[j] = src[i]
	}
}

func hasRepeats(idx []int) bool {
	for i := 1; i < len(idx); i++ {
		for j := range i {
			if idx[i] == idx[j] {
				return true
			}
		}
	}
	return false
}

func swizzleName(idx []int) string {
	var b strings.Builder
	for _, j := range idx {
		b.WriteByte(positionLabels[j])
	}
	return b.String()
}

// parseSwizzle returns the component indices for the given swizzle name
// on a vector of the given dimension. The name must have the given degree,
// and all of its letters must come from one of the label schemes that
// the accessors of dim component vectors are generated with.
func parseSwizzle(name string, dim, degree int) ([]int, error) {
	if len(name) != degree {
		return nil, fmt.Errorf("%w %q: need %d components, not %d", ErrInvalidSwizzle, name, degree, len(name))
	}
	lname := strings.ToLower(name)
	for _, labels := range swizzleSchemes[dim] {
		if !strings.ContainsRune(labels, rune(lname[0])) {
			continue
		}
		idx := make([]int, degree)
		for i := range degree {
			j := strings.IndexByte(labels, lname[i])
			if j < 0 {
				return nil, fmt.Errorf("%w %q: %q is not one of %q", ErrInvalidSwizzle, name, name[i], labels)
			}
			idx[i] = j
		}
		return idx, nil
	}
	return nil, fmt.Errorf("%w %q for a %d component vector", ErrInvalidSwizzle, name, dim)
}

///////////////////////////////////////////////////////////////////////
//  Swizzle2

// Swizzle2 is a swizzle view of degree 2 over the storage of a parent vector.
// See the package documentation on swizzle views for its semantics.
// The zero value is not usable; views come from the accessor methods.
type Swizzle2[T Number] struct {
	v   []T
	idx [2]int
}

// Indices returns the parent component indices selected by the view, in order.
func (s Swizzle2[T]) Indices() [2]int {
	return s.idx
}

// HasRepeats returns whether the view selects any component more than once.
func (s Swizzle2[T]) HasRepeats() bool {
	return hasRepeats(s.idx[:])
}

// String returns the position name of the view followed by its current value.
func (s Swizzle2[T]) String() string {
	return swizzleName(s.idx[:]) + s.Vector().String()
}

// Vector returns a new vector with the current values of the selected components.
func (s Swizzle2[T]) Vector() Vector2[T] {
	return Vector2[T]{s.v[s.idx[0]], s.v[s.idx[1]]}
}

// Set stores the components of the given vector into the selected parent
// components in order. A component that is selected more than once ends up
// with the value of its last occurrence.
func (s Swizzle2[T]) Set(v Vector2[T]) Swizzle2[T] {
	scatter(s.v, s.idx[:], v[:])
	return s
}

// SetChecked is like Set, but returns [ErrRepeatedComponent] without modifying
// the parent if the view selects any component more than once.
func (s Swizzle2[T]) SetChecked(v Vector2[T]) error {
	if s.HasRepeats() {
		return fmt.Errorf("%w: %s", ErrRepeatedComponent, swizzleName(s.idx[:]))
	}
	s.Set(v)
	return nil
}

// SetScalar sets all of the selected components to the given value.
func (s Swizzle2[T]) SetScalar(x T) Swizzle2[T] {
	return s.Set(Vector2Scalar(x))
}

// Add returns the addition of the view value with other as a new vector.
func (s Swizzle2[T]) Add(other Vector2[T]) Vector2[T] {
	return s.Vector().Add(other)
}

// AddScalar returns the addition of the view value with scalar x as a new vector.
func (s Swizzle2[T]) AddScalar(x T) Vector2[T] {
	return s.Vector().AddScalar(x)
}

// SetAdd sets the view to its addition with other.
func (s Swizzle2[T]) SetAdd(other Vector2[T]) Swizzle2[T] {
	return s.Set(s.Add(other))
}

// SetAddScalar sets the view to its addition with scalar x.
func (s Swizzle2[T]) SetAddScalar(x T) Swizzle2[T] {
	return s.Set(s.AddScalar(x))
}

// Sub returns the subtraction of the view value with other as a new vector.
func (s Swizzle2[T]) Sub(other Vector2[T]) Vector2[T] {
	return s.Vector().Sub(other)
}

// SubScalar returns the subtraction of the view value with scalar x as a new vector.
func (s Swizzle2[T]) SubScalar(x T) Vector2[T] {
	return s.Vector().SubScalar(x)
}

// SetSub sets the view to its subtraction with other.
func (s Swizzle2[T]) SetSub(other Vector2[T]) Swizzle2[T] {
	return s.Set(s.Sub(other))
}

// SetSubScalar sets the view to its subtraction with scalar x.
func (s Swizzle2[T]) SetSubScalar(x T) Swizzle2[T] {
	return s.Set(s.SubScalar(x))
}

// Mul returns the multiplication of the view value with other as a new vector.
func (s Swizzle2[T]) Mul(other Vector2[T]) Vector2[T] {
	return s.Vector().Mul(other)
}

// MulScalar returns the multiplication of the view value with scalar x as a new vector.
func (s Swizzle2[T]) MulScalar(x T) Vector2[T] {
	return s.Vector().MulScalar(x)
}

// SetMul sets the view to its multiplication with other.
func (s Swizzle2[T]) SetMul(other Vector2[T]) Swizzle2[T] {
	return s.Set(s.Mul(other))
}

// SetMulScalar sets the view to its multiplication with scalar x.
func (s Swizzle2[T]) SetMulScalar(x T) Swizzle2[T] {
	return s.Set(s.MulScalar(x))
}

// Div returns the division of the view value with other as a new vector.
func (s Swizzle2[T]) Div(other Vector2[T]) Vector2[T] {
	return s.Vector().Div(other)
}

// DivScalar returns the division of the view value with scalar x as a new vector.
func (s Swizzle2[T]) DivScalar(x T) Vector2[T] {
	return s.Vector().DivScalar(x)
}

// SetDiv sets the view to its division with other.
func (s Swizzle2[T]) SetDiv(other Vector2[T]) Swizzle2[T] {
	return s.Set(s.Div(other))
}

// SetDivScalar sets the view to its division with scalar x.
func (s Swizzle2[T]) SetDivScalar(x T) Swizzle2[T] {
	return s.Set(s.DivScalar(x))
}

// Negate returns the negated view value as a new vector.
func (s Swizzle2[T]) Negate() Vector2[T] {
	return s.Vector().Negate()
}

// Dot returns the dot product of the view value with other.
func (s Swizzle2[T]) Dot(other Vector2[T]) float64 {
	return s.Vector().Dot(other)
}

// Length returns the length of the view value.
func (s Swizzle2[T]) Length() float64 {
	return s.Vector().Length()
}

///////////////////////////////////////////////////////////////////////
//  Swizzle3

// Swizzle3 is a swizzle view of degree 3 over the storage of a parent vector.
// See the package documentation on swizzle views for its semantics.
// The zero value is not usable; views come from the accessor methods.
type Swizzle3[T Number] struct {
	v   []T
	idx [3]int
}

// Indices returns the parent component indices selected by the view, in order.
func (s Swizzle3[T]) Indices() [3]int {
	return s.idx
}

// HasRepeats returns whether the view selects any component more than once.
func (s Swizzle3[T]) HasRepeats() bool {
	return hasRepeats(s.idx[:])
}

// String returns the position name of the view followed by its current value.
func (s Swizzle3[T]) String() string {
	return swizzleName(s.idx[:]) + s.Vector().String()
}

// Vector returns a new vector with the current values of the selected components.
func (s Swizzle3[T]) Vector() Vector3[T] {
	return Vector3[T]{s.v[s.idx[0]], s.v[s.idx[1]], s.v[s.idx[2]]}
}

// Set stores the components of the given vector into the selected parent
// components in order. A component that is selected more than once ends up
// with the value of its last occurrence.
func (s Swizzle3[T]) Set(v Vector3[T]) Swizzle3[T] {
	scatter(s.v, s.idx[:], v[:])
	return s
}

// SetChecked is like Set, but returns [ErrRepeatedComponent] without modifying
// the parent if the view selects any component more than once.
func (s Swizzle3[T]) SetChecked(v Vector3[T]) error {
	if s.HasRepeats() {
		return fmt.Errorf("%w: %s", ErrRepeatedComponent, swizzleName(s.idx[:]))
	}
	s.Set(v)
	return nil
}

// SetScalar sets all of the selected components to the given value.
func (s Swizzle3[T]) SetScalar(x T) Swizzle3[T] {
	return s.Set(Vector3Scalar(x))
}

// Add returns the addition of the view value with other as a new vector.
func (s Swizzle3[T]) Add(other Vector3[T]) Vector3[T] {
	return s.Vector().Add(other)
}

// AddScalar returns the addition of the view value with scalar x as a new vector.
func (s Swizzle3[T]) AddScalar(x T) Vector3[T] {
	return s.Vector().AddScalar(x)
}

// SetAdd sets the view to its addition with other.
func (s Swizzle3[T]) SetAdd(other Vector3[T]) Swizzle3[T] {
	return s.Set(s.Add(other))
}

// SetAddScalar sets the view to its addition with scalar x.
func (s Swizzle3[T]) SetAddScalar(x T) Swizzle3[T] {
	return s.Set(s.AddScalar(x))
}

// Sub returns the subtraction of the view value with other as a new vector.
func (s Swizzle3[T]) Sub(other Vector3[T]) Vector3[T] {
	return s.Vector().Sub(other)
}

// SubScalar returns the subtraction of the view value with scalar x as a new vector.
func (s Swizzle3[T]) SubScalar(x T) Vector3[T] {
	return s.Vector().SubScalar(x)
}

// SetSub sets the view to its subtraction with other.
func (s Swizzle3[T]) SetSub(other Vector3[T]) Swizzle3[T] {
	return s.Set(s.Sub(other))
}

// SetSubScalar sets the view to its subtraction with scalar x.
func (s Swizzle3[T]) SetSubScalar(x T) Swizzle3[T] {
	return s.Set(s.SubScalar(x))
}

// Mul returns the multiplication of the view value with other as a new vector.
func (s Swizzle3[T]) Mul(other Vector3[T]) Vector3[T] {
	return s.Vector().Mul(other)
}

// MulScalar returns the multiplication of the view value with scalar x as a new vector.
func (s Swizzle3[T]) MulScalar(x T) Vector3[T] {
	return s.Vector().MulScalar(x)
}

// SetMul sets the view to its multiplication with other.
func (s Swizzle3[T]) SetMul(other Vector3[T]) Swizzle3[T] {
	return s.Set(s.Mul(other))
}

// SetMulScalar sets the view to its multiplication with scalar x.
func (s Swizzle3[T]) SetMulScalar(x T) Swizzle3[T] {
	return s.Set(s.MulScalar(x))
}

// Div returns the division of the view value with other as a new vector.
func (s Swizzle3[T]) Div(other Vector3[T]) Vector3[T] {
	return s.Vector().Div(other)
}

// DivScalar returns the division of the view value with scalar x as a new vector.
func (s Swizzle3[T]) DivScalar(x T) Vector3[T] {
	return s.Vector().DivScalar(x)
}

// SetDiv sets the view to its division with other.
func (s Swizzle3[T]) SetDiv(other Vector3[T]) Swizzle3[T] {
	return s.Set(s.Div(other))
}

// SetDivScalar sets the view to its division with scalar x.
func (s Swizzle3[T]) SetDivScalar(x T) Swizzle3[T] {
	return s.Set(s.DivScalar(x))
}

// Negate returns the negated view value as a new vector.
func (s Swizzle3[T]) Negate() Vector3[T] {
	return s.Vector().Negate()
}

// Dot returns the dot product of the view value with other.
func (s Swizzle3[T]) Dot(other Vector3[T]) float64 {
	return s.Vector().Dot(other)
}

// Length returns the length of the view value.
func (s Swizzle3[T]) Length() float64 {
	return s.Vector().Length()
}

///////////////////////////////////////////////////////////////////////
//  Swizzle4

// Swizzle4 is a swizzle view of degree 4 over the storage of a parent vector.
// See the package documentation on swizzle views for its semantics.
// The zero value is not usable; views come from the accessor methods.
type Swizzle4[T Number] struct {
	v   []T
	idx [4]int
}

// Indices returns the parent component indices selected by the view, in order.
func (s Swizzle4[T]) Indices() [4]int {
	return s.idx
}

// HasRepeats returns whether the view selects any component more than once.
func (s Swizzle4[T]) HasRepeats() bool {
	return hasRepeats(s.idx[:])
}

// String returns the position name of the view followed by its current value.
func (s Swizzle4[T]) String() string {
	return swizzleName(s.idx[:]) + s.Vector().String()
}

// Vector returns a new vector with the current values of the selected components.
func (s Swizzle4[T]) Vector() Vector4[T] {
	return Vector4[T]{s.v[s.idx[0]], s.v[s.idx[1]], s.v[s.idx[2]], s.v[s.idx[3]]}
}

// Set stores the components of the given vector into the selected parent
// components in order. A component that is selected more than once ends up
// with the value of its last occurrence.
func (s Swizzle4[T]) Set(v Vector4[T]) Swizzle4[T] {
	scatter(s.v, s.idx[:], v[:])
	return s
}

// SetChecked is like Set, but returns [ErrRepeatedComponent] without modifying
// the parent if the view selects any component more than once.
func (s Swizzle4[T]) SetChecked(v Vector4[T]) error {
	if s.HasRepeats() {
		return fmt.Errorf("%w: %s", ErrRepeatedComponent, swizzleName(s.idx[:]))
	}
	s.Set(v)
	return nil
}

// SetScalar sets all of the selected components to the given value.
func (s Swizzle4[T]) SetScalar(x T) Swizzle4[T] {
	return s.Set(Vector4Scalar(x))
}

// Add returns the addition of the view value with other as a new vector.
func (s Swizzle4[T]) Add(other Vector4[T]) Vector4[T] {
	return s.Vector().Add(other)
}

// AddScalar returns the addition of the view value with scalar x as a new vector.
func (s Swizzle4[T]) AddScalar(x T) Vector4[T] {
	return s.Vector().AddScalar(x)
}

// SetAdd sets the view to its addition with other.
func (s Swizzle4[T]) SetAdd(other Vector4[T]) Swizzle4[T] {
	return s.Set(s.Add(other))
}

// SetAddScalar sets the view to its addition with scalar x.
func (s Swizzle4[T]) SetAddScalar(x T) Swizzle4[T] {
	return s.Set(s.AddScalar(x))
}

// Sub returns the subtraction of the view value with other as a new vector.
func (s Swizzle4[T]) Sub(other Vector4[T]) Vector4[T] {
	return s.Vector().Sub(other)
}

// SubScalar returns the subtraction of the view value with scalar x as a new vector.
func (s Swizzle4[T]) SubScalar(x T) Vector4[T] {
	return s.Vector().SubScalar(x)
}

// SetSub sets the view to its subtraction with other.
func (s Swizzle4[T]) SetSub(other Vector4[T]) Swizzle4[T] {
	return s.Set(s.Sub(other))
}

// SetSubScalar sets the view to its subtraction with scalar x.
func (s Swizzle4[T]) SetSubScalar(x T) Swizzle4[T] {
	return s.Set(s.SubScalar(x))
}

// Mul returns the multiplication of the view value with other as a new vector.
func (s Swizzle4[T]) Mul(other Vector4[T]) Vector4[T] {
	return s.Vector().Mul(other)
}

// MulScalar returns the multiplication of the view value with scalar x as a new vector.
func (s Swizzle4[T]) MulScalar(x T) Vector4[T] {
	return s.Vector().MulScalar(x)
}

// SetMul sets the view to its multiplication with other.
func (s Swizzle4[T]) SetMul(other Vector4[T]) Swizzle4[T] {
	return s.Set(s.Mul(other))
}

// SetMulScalar sets the view to its multiplication with scalar x.
func (s Swizzle4[T]) SetMulScalar(x T) Swizzle4[T] {
	return s.Set(s.MulScalar(x))
}

// Div returns the division of the view value with other as a new vector.
func (s Swizzle4[T]) Div(other Vector4[T]) Vector4[T] {
	return s.Vector().Div(other)
}

// DivScalar returns the division of the view value with scalar x as a new vector.
func (s Swizzle4[T]) DivScalar(x T) Vector4[T] {
	return s.Vector().DivScalar(x)
}

// SetDiv sets the view to its division with other.
func (s Swizzle4[T]) SetDiv(other Vector4[T]) Swizzle4[T] {
	return s.Set(s.Div(other))
}

// SetDivScalar sets the view to its division with scalar x.
func (s Swizzle4[T]) SetDivScalar(x T) Swizzle4[T] {
	return s.Set(s.DivScalar(x))
}

// Negate returns the negated view value as a new vector.
func (s Swizzle4[T]) Negate() Vector4[T] {
	return s.Vector().Negate()
}

// Dot returns the dot product of the view value with other.
func (s Swizzle4[T]) Dot(other Vector4[T]) float64 {
	return s.Vector().Dot(other)
}

// Length returns the length of the view value.
func (s Swizzle4[T]) Length() float64 {
	return s.Vector().Length()
}

///////////////////////////////////////////////////////////////////////
//  Swizzles by name

// Swizzle2 returns the [Swizzle2] view with the given name, such as "yx"
// (case insensitive), or an error wrapping [ErrInvalidSwizzle].
func (v *Vector2[T]) Swizzle2(name string) (Swizzle2[T], error) {
	idx, err := parseSwizzle(name, 2, 2)
	if err != nil {
		return Swizzle2[T]{}, err
	}
	return Swizzle2[T]{v[:], [2]int(idx)}, nil
}

// Swizzle2 returns the [Swizzle2] view with the given name, such as "zx"
// (case insensitive), or an error wrapping [ErrInvalidSwizzle].
func (v *Vector3[T]) Swizzle2(name string) (Swizzle2[T], error) {
	idx, err := parseSwizzle(name, 3, 2)
	if err != nil {
		return Swizzle2[T]{}, err
	}
	return Swizzle2[T]{v[:], [2]int(idx)}, nil
}

// Swizzle3 returns the [Swizzle3] view with the given name, such as "bgr"
// (case insensitive), or an error wrapping [ErrInvalidSwizzle].
func (v *Vector3[T]) Swizzle3(name string) (Swizzle3[T], error) {
	idx, err := parseSwizzle(name, 3, 3)
	if err != nil {
		return Swizzle3[T]{}, err
	}
	return Swizzle3[T]{v[:], [3]int(idx)}, nil
}

// Swizzle2 returns the [Swizzle2] view with the given name, such as "zw"
// (case insensitive), or an error wrapping [ErrInvalidSwizzle].
func (v *Vector4[T]) Swizzle2(name string) (Swizzle2[T], error) {
	idx, err := parseSwizzle(name, 4, 2)
	if err != nil {
		return Swizzle2[T]{}, err
	}
	return Swizzle2[T]{v[:], [2]int(idx)}, nil
}

// Swizzle3 returns the [Swizzle3] view with the given name, such as "rgb"
// (case insensitive), or an error wrapping [ErrInvalidSwizzle].
func (v *Vector4[T]) Swizzle3(name string) (Swizzle3[T], error) {
	idx, err := parseSwizzle(name, 4, 3)
	if err != nil {
		return Swizzle3[T]{}, err
	}
	return Swizzle3[T]{v[:], [3]int(idx)}, nil
}

// Swizzle4 returns the [Swizzle4] view with the given name, such as "wzyx"
// (case insensitive), or an error wrapping [ErrInvalidSwizzle].
func (v *Vector4[T]) Swizzle4(name string) (Swizzle4[T], error) {
	idx, err := parseSwizzle(name, 4, 4)
	if err != nil {
		return Swizzle4[T]{}, err
	}
	return Swizzle4[T]{v[:], [4]int(idx)}, nil
}
