package polar

import (
	"fmt"
)

// AxisRegistry stores the radius axes of a plot in indexed slots together
// with the location where each one is drawn. Slots may be left empty.
type AxisRegistry struct {
	axes      []ValueAxis
	locations []AxisLocation

	owner  AxisOwner
	notify func()
}

func newAxisRegistry(owner AxisOwner, notify func()) AxisRegistry {
	r := AxisRegistry{
		owner:  owner,
		notify: notify,
	}
	r.locations = append(r.locations, defaultLocations[:]...)
	return r
}

func (r *AxisRegistry) Get(index int) ValueAxis {
	if index < 0 || index >= len(r.axes) {
		return nil
	}
	return r.axes[index]
}

// Set stores axis in the given slot. The axis previously stored there stops
// reporting to the plot and the new one is attached and configured.
func (r *AxisRegistry) Set(index int, axis ValueAxis, notify bool) error {
	if index < 0 {
		return invalidArgument("index", fmt.Sprintf("negative axis index %d", index))
	}
	existing := r.Get(index)
	if existing != nil && existing == axis {
		return nil
	}
	if existing != nil {
		existing.Detach()
	}
	r.grow(index)
	r.axes[index] = axis
	if axis != nil {
		axis.Attach(r.owner)
		axis.Configure()
	}
	if notify {
		r.fire()
	}
	return nil
}

func (r *AxisRegistry) Count() int {
	return len(r.axes)
}

func (r *AxisRegistry) IndexOf(axis ValueAxis) int {
	if axis == nil {
		return -1
	}
	for i, a := range r.axes {
		if a == axis {
			return i
		}
	}
	return -1
}

func (r *AxisRegistry) Location(index int) AxisLocation {
	if index < 0 || index >= len(r.locations) {
		return LocationUnset
	}
	return r.locations[index]
}

func (r *AxisRegistry) SetLocation(index int, loc AxisLocation, notify bool) error {
	if index < 0 {
		return invalidArgument("index", fmt.Sprintf("negative axis index %d", index))
	}
	if !loc.Valid() {
		return invalidArgument("location", "unset location")
	}
	if r.Location(index) == loc {
		return nil
	}
	r.grow(index)
	r.locations[index] = loc
	if notify {
		r.fire()
	}
	return nil
}

// Each calls fn for every non empty slot in index order.
func (r *AxisRegistry) Each(fn func(int, ValueAxis)) {
	for i, a := range r.axes {
		if a == nil {
			continue
		}
		fn(i, a)
	}
}

func (r *AxisRegistry) grow(index int) {
	for len(r.axes) <= index {
		r.axes = append(r.axes, nil)
	}
	for i := len(r.locations); i <= index; i++ {
		r.locations = append(r.locations, DefaultLocation(i))
	}
}

func (r *AxisRegistry) fire() {
	if r.notify != nil {
		r.notify()
	}
}
