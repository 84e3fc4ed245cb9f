package core

import "time"

// Drawable is anything that advances with time and paints itself onto a frame.
//
// Update must keep the entity inside the grid: movement that would leave it
// is clamped or rejected, never wrapped. Draw overwrites whatever is already
// in the frame at the entity's cells, so the order in which a game draws its
// entities defines the z-order.
type Drawable interface {
	Update(elapsed time.Duration)
	Draw(f *Frame)
}
