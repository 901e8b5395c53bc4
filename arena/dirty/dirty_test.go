package dirty

import (
	"reflect"
	"testing"
)

func Test_DirtyTracker_Granularity(t *testing.T) {
	tracker := NewTracker(16)
	tracker.Add(20, 4)

	got := tracker.Ranges()
	want := []Range{{Off: 16, Len: 16}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Ranges() = %v, want %v", got, want)
	}
}

func Test_DirtyTracker_MergesOverlappingAndAdjacent(t *testing.T) {
	tracker := NewTracker(1)
	tracker.Add(64, 16)
	tracker.Add(0, 16)
	tracker.Add(16, 16) // adjacent to [0,16)
	tracker.Add(70, 20) // overlaps [64,80)
	tracker.Add(200, 8)

	got := tracker.Ranges()
	want := []Range{{Off: 0, Len: 32}, {Off: 64, Len: 26}, {Off: 200, Len: 8}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Ranges() = %v, want %v", got, want)
	}
	if tracker.Bytes() != 32+26+8 {
		t.Fatalf("Bytes() = %d", tracker.Bytes())
	}
}

func Test_DirtyTracker_IgnoresEmpty(t *testing.T) {
	tracker := NewTracker(0)
	tracker.Add(10, 0)
	tracker.Add(-1, 4)
	if tracker.Len() != 0 || tracker.Ranges() != nil {
		t.Fatalf("expected no ranges, got %d", tracker.Len())
	}
}

func Test_DirtyTracker_LenCountsWritesAndReset(t *testing.T) {
	tracker := NewTracker(1)
	tracker.Add(32, 16)
	tracker.Add(0, 16)
	tracker.Add(0, 16)

	if tracker.Len() != 3 {
		t.Fatalf("Len() = %d, want every Add counted", tracker.Len())
	}
	if tracker.Bytes() != 32 {
		t.Fatalf("Bytes() = %d, repeated writes must count once", tracker.Bytes())
	}

	tracker.Reset()
	if tracker.Len() != 0 {
		t.Fatalf("Reset() left %d ranges", tracker.Len())
	}
}
