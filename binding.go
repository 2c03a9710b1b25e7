package polar

import (
	"fmt"
	"maps"
	"slices"
)

// AxisBinding maps dataset indices to the ordered list of axis indices they
// are drawn against. An unbound dataset uses axis 0.
type AxisBinding struct {
	axes map[int][]int
}

func (b *AxisBinding) Set(dataset int, axes []int) error {
	if dataset < 0 {
		return invalidArgument("dataset", fmt.Sprintf("negative index %d", dataset))
	}
	if axes == nil {
		delete(b.axes, dataset)
		return nil
	}
	if err := checkAxisIndices(axes); err != nil {
		return err
	}
	if b.axes == nil {
		b.axes = make(map[int][]int)
	}
	b.axes[dataset] = slices.Clone(axes)
	return nil
}

func (b *AxisBinding) Axes(dataset int) []int {
	return slices.Clone(b.axes[dataset])
}

func (b *AxisBinding) Bound(dataset int) bool {
	_, ok := b.axes[dataset]
	return ok
}

// First returns the primary axis of dataset.
func (b *AxisBinding) First(dataset int) int {
	if list := b.axes[dataset]; len(list) > 0 {
		return list[0]
	}
	return 0
}

// Datasets lists, among the first count datasets, the ones drawn against
// axis.
func (b *AxisBinding) Datasets(axis, count int) []int {
	var list []int
	for i := 0; i < count; i++ {
		axes, ok := b.axes[i]
		if !ok {
			if axis == 0 {
				list = append(list, i)
			}
			continue
		}
		if slices.Contains(axes, axis) {
			list = append(list, i)
		}
	}
	return list
}

// Keys returns the bound dataset indices in ascending order.
func (b *AxisBinding) Keys() []int {
	return slices.Sorted(maps.Keys(b.axes))
}

func (b *AxisBinding) Clone() AxisBinding {
	var c AxisBinding
	for k, v := range b.axes {
		if c.axes == nil {
			c.axes = make(map[int][]int)
		}
		c.axes[k] = slices.Clone(v)
	}
	return c
}

func checkAxisIndices(axes []int) error {
	if len(axes) == 0 {
		return invalidArgument("axes", "empty list of axis indices")
	}
	seen := make(map[int]struct{})
	for _, a := range axes {
		if a < 0 {
			return invalidArgument("axes", fmt.Sprintf("negative index %d", a))
		}
		if _, ok := seen[a]; ok {
			return invalidArgument("axes", fmt.Sprintf("duplicate index %d", a))
		}
		seen[a] = struct{}{}
	}
	return nil
}
