package video

// DefaultMinSegmentSeconds is the lower bound on any single segment's
// on-screen time. Below ~2s a slideshow flickers, so audio/video length
// equality is sacrificed rather than under-displaying images.
const DefaultMinSegmentSeconds = 2.0

// TimelineAllocator distributes a narration's total duration across
// story segments.
type TimelineAllocator struct {
	MinSegmentSeconds float64
}

// NewTimelineAllocator returns an allocator with the given floor,
// falling back to DefaultMinSegmentSeconds when min is not positive.
func NewTimelineAllocator(min float64) TimelineAllocator {
	if min <= 0 {
		min = DefaultMinSegmentSeconds
	}
	return TimelineAllocator{MinSegmentSeconds: min}
}

// Allocate returns one display duration per segment, in seconds.
//
// Time is distributed evenly, with each segment held at least
// MinSegmentSeconds. When the floor binds, the allocated total exceeds
// totalDuration and the resulting video runs longer than the audio.
// Any shortfall against totalDuration is added to the last segment so
// the sum covers the narration exactly in the floor-free case.
func (a TimelineAllocator) Allocate(segmentCount int, totalDuration float64) []float64 {
	if segmentCount == 0 {
		return nil
	}

	base := totalDuration / float64(segmentCount)
	if base < a.MinSegmentSeconds {
		base = a.MinSegmentSeconds
	}

	durations := make([]float64, segmentCount)
	for i := range durations {
		durations[i] = base
	}

	allocated := base * float64(segmentCount)
	if allocated < totalDuration {
		durations[segmentCount-1] += totalDuration - allocated
	}

	return durations
}
