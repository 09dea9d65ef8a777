// SPDX-License-Identifier: EPL-2.0

package tensor

import (
	"fmt"
	"math"
	"slices"
)

// Tensor is a dense row-major float32 array.
type Tensor struct {
	Shape []int     `json:"shape"`
	Data  []float32 `json:"data"`
}

// New checks that data holds exactly the number of elements shape
// describes. Neither slice is copied.
func New(shape []int, data []float32) (Tensor, error) {
	t := Tensor{Shape: shape, Data: data}
	if err := t.Validate(); err != nil {
		return Tensor{}, err
	}

	return t, nil
}

func (t Tensor) Validate() error {
	n := 1
	for _, d := range t.Shape {
		if d < 0 {
			return fmt.Errorf("%w: negative dimension in %v", ErrUnsupportedShape, t.Shape)
		}
		if d != 0 && n > math.MaxInt/d {
			return fmt.Errorf("%w: shape %v overflows", ErrShapeMismatch, t.Shape)
		}
		n *= d
	}
	if n != len(t.Data) {
		return fmt.Errorf("%w: shape %v needs %d values, have %d", ErrShapeMismatch, t.Shape, n, len(t.Data))
	}

	return nil
}

func (t Tensor) Dims() int { return len(t.Shape) }

// At returns the element at idx. It panics if idx is out of range, like a
// slice index would.
func (t Tensor) At(idx ...int) float32 {
	if len(idx) != len(t.Shape) {
		panic(fmt.Sprintf("tensor: %d indices for %d dimensions", len(idx), len(t.Shape)))
	}

	off := 0
	for i, v := range idx {
		if v < 0 || v >= t.Shape[i] {
			panic(fmt.Sprintf("tensor: index %v out of range for shape %v", idx, t.Shape))
		}
		off = off*t.Shape[i] + v
	}

	return t.Data[off]
}

// Unsqueeze returns t with a leading axis of size 1. Data is shared.
func (t Tensor) Unsqueeze() Tensor {
	return Tensor{Shape: append([]int{1}, t.Shape...), Data: t.Data}
}

func (t Tensor) Equal(o Tensor) bool {
	return slices.Equal(t.Shape, o.Shape) && slices.Equal(t.Data, o.Data)
}
