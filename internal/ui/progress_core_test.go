package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutConstants(t *testing.T) {
	assert.Equal(t, 11, PrefixWidth)
	assert.Equal(t, 9, PostfixWidth)
	assert.Equal(t, 20, WrapperWidth)
	assert.Equal(t, 24, MinLineWidth)
}

func TestBarWidth(t *testing.T) {
	tests := []struct {
		lineWidth int
		want      int
		wantOK    bool
	}{
		{0, 0, false},
		{10, 0, false},
		{23, 0, false},
		{24, 4, true},
		{40, 20, true},
		{80, 60, true},
	}

	for _, tt := range tests {
		got, ok := BarWidth(tt.lineWidth)
		assert.Equal(t, tt.wantOK, ok, "line width %d", tt.lineWidth)
		assert.Equal(t, tt.want, got, "line width %d", tt.lineWidth)
	}
}

func TestValidateCounts(t *testing.T) {
	tests := []struct {
		name                            string
		pending, failed, success, total int
		wantErr                         bool
	}{
		{"all zero", 0, 0, 0, 0, false},
		{"partial", 1, 2, 3, 10, false},
		{"complete", 0, 4, 6, 10, false},
		{"largest total", 0, 0, 999, 999, false},
		{"total too large", 0, 0, 0, 1000, true},
		{"counts exceed total", 5, 3, 3, 10, true},
		{"negative pending", -1, 0, 0, 10, true},
		{"negative total", 0, 0, 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCounts(tt.pending, tt.failed, tt.success, tt.total)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCounts)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComputeSegments(t *testing.T) {
	tests := []struct {
		name                            string
		pending, failed, success, total int
		width                           int
		want                            Segments
	}{
		{
			name: "nothing done",
			total: 10, width: 20,
			want: Segments{Width: 20},
		},
		{
			name: "all success",
			success: 10, total: 10, width: 20,
			want: Segments{Width: 20, SuccessEnd: 20, PendingEnd: 20},
		},
		{
			name: "failed then success",
			failed: 3, success: 7, total: 10, width: 20,
			want: Segments{Width: 20, FailedEnd: 6, SuccessEnd: 20, PendingEnd: 20},
		},
		{
			name: "single pending is forced visible",
			pending: 1, total: 1, width: 20,
			want: Segments{Width: 20, PendingEnd: 19},
		},
		{
			name: "tiny pending share still gets a column",
			pending: 1, total: 999, width: 4,
			want: Segments{Width: 4, PendingEnd: 0},
		},
		{
			name: "pending at start",
			pending: 5, total: 10, width: 20,
			want: Segments{Width: 20, PendingEnd: 9},
		},
		{
			name: "success yields to pending on collision",
			pending: 1, success: 500, total: 999, width: 20,
			want: Segments{Width: 20, SuccessEnd: 9, PendingEnd: 9},
		},
		{
			name: "failed and success yield to pending on collision",
			pending: 1, failed: 500, total: 999, width: 20,
			want: Segments{Width: 20, FailedEnd: 9, SuccessEnd: 9, PendingEnd: 9},
		},
		{
			name: "full bar with pending keeps marker",
			pending: 1, success: 9, total: 10, width: 4,
			want: Segments{Width: 4, SuccessEnd: 3, PendingEnd: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSegments(tt.pending, tt.failed, tt.success, tt.total, tt.width)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegments_Lengths(t *testing.T) {
	s := Segments{Width: 20, FailedEnd: 3, SuccessEnd: 8, PendingEnd: 12}

	assert.Equal(t, 3, s.FailedLen())
	assert.Equal(t, 5, s.SuccessLen())
	assert.Equal(t, 4, s.PendingLen())
	assert.True(t, s.HasMarker())
	assert.Equal(t, 7, s.RemainingLen())

	full := Segments{Width: 20, SuccessEnd: 20, PendingEnd: 20}
	assert.False(t, full.HasMarker())
	assert.Equal(t, 0, full.RemainingLen())

	markerOnly := Segments{Width: 20, PendingEnd: 19}
	assert.True(t, markerOnly.HasMarker())
	assert.Equal(t, 0, markerOnly.RemainingLen())
}

// Every column of the body belongs to exactly one segment, for every valid
// combination of counters.
func TestComputeSegments_PartitionsWidth(t *testing.T) {
	for total := 1; total <= 9; total++ {
		for width := 4; width <= 30; width++ {
			for pending := 0; pending <= total; pending++ {
				for failed := 0; pending+failed <= total; failed++ {
					for success := 0; pending+failed+success <= total; success++ {
						s := ComputeSegments(pending, failed, success, total, width)

						require.GreaterOrEqual(t, s.FailedLen(), 0)
						require.GreaterOrEqual(t, s.SuccessLen(), 0)
						require.GreaterOrEqual(t, s.PendingLen(), 0)

						marker := 0
						if s.HasMarker() {
							marker = 1
						}
						sum := s.FailedLen() + s.SuccessLen() + s.PendingLen() + marker + s.RemainingLen()
						require.Equal(t, width, sum,
							"pending=%d failed=%d success=%d total=%d width=%d: %+v",
							pending, failed, success, total, width, s)

						if pending > 0 {
							require.True(t, s.HasMarker(), "pending work always shows the marker")
						}
					}
				}
			}
		}
	}
}

func TestComputeSegments_PendingNeverSwallowed(t *testing.T) {
	// Raw allocation puts every boundary at 0; after adjustment the pending
	// segment still owns the marker column.
	s := ComputeSegments(1, 0, 0, 999, 4)
	assert.Equal(t, 0, s.FailedEnd)
	assert.Equal(t, 0, s.SuccessEnd)
	assert.Equal(t, 0, s.PendingEnd)
	assert.True(t, s.HasMarker())
}

func TestComputeSegments_SuccessIsMonotonic(t *testing.T) {
	const total, width, failed = 50, 30, 5

	for _, pending := range []int{0, 1, 2, 10} {
		prev := ComputeSegments(pending, failed, 0, total, width)
		for success := 1; pending+failed+success <= total; success++ {
			cur := ComputeSegments(pending, failed, success, total, width)
			assert.GreaterOrEqual(t, cur.SuccessEnd, prev.SuccessEnd,
				"pending=%d success=%d", pending, success)
			assert.GreaterOrEqual(t, cur.SuccessLen(), prev.SuccessLen(),
				"pending=%d success=%d", pending, success)
			prev = cur
		}
	}
}
