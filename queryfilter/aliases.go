package queryfilter

import (
	"time"

	"github.com/google/uuid"
)

// Named instantiations for the common scalar field types.
type (
	BooleanFilter  = Filter[bool]
	UUIDFilter     = Filter[uuid.UUID]
	ShortFilter    = RangeFilter[int16]
	IntFilter      = RangeFilter[int]
	IntegerFilter  = RangeFilter[int32]
	LongFilter     = RangeFilter[int64]
	FloatFilter    = RangeFilter[float32]
	DoubleFilter   = RangeFilter[float64]
	DurationFilter = RangeFilter[time.Duration]
	InstantFilter  = RangeFilter[time.Time]
)
