package videotext

import (
	"errors"
	"fmt"
)

// ErrSurfaceTooLarge is returned by DefaultAllocator for surfaces above
// MaxSurfacePixels or with non-positive dimensions.
var ErrSurfaceTooLarge = errors.New("videotext: surface dimensions out of range")

// AllocationError reports that the offscreen mask surface could not be
// allocated. It is raised with panic: the host handed the pipeline a box or
// allocator it cannot work with.
type AllocationError struct {
	Width, Height int
	Err           error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("videotext: cannot allocate %dx%d mask surface: %v", e.Width, e.Height, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }
