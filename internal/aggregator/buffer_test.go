package aggregator

import (
	"fmt"
	"sync"
	"testing"
)

func TestBufferDrain(t *testing.T) {
	b := NewBuffer()
	b.Append("a", "one")
	b.Append("a", "two")
	b.Append("b", "three")

	got := b.Drain("a")
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("Drain(a) = %v, want [one two] in order", got)
	}
	if again := b.Drain("a"); len(again) != 0 {
		t.Errorf("second Drain(a) = %v, want empty", again)
	}
	if b.Len("b") != 1 {
		t.Errorf("Len(b) = %d after draining a, want 1", b.Len("b"))
	}
}

func TestBufferDrainAll(t *testing.T) {
	b := NewBuffer()
	b.Append("a", "one")
	b.Append("b", "two")

	drained := b.DrainAll()
	if len(drained) != 2 {
		t.Fatalf("DrainAll returned %d channels, want 2", len(drained))
	}
	if b.Len("a") != 0 || b.Len("b") != 0 {
		t.Error("buffer not empty after DrainAll")
	}

	// The fresh map keeps accepting appends.
	b.Append("a", "three")
	if got := b.Drain("a"); len(got) != 1 || got[0] != "three" {
		t.Errorf("post-DrainAll Drain(a) = %v, want [three]", got)
	}
}

// Messages appended concurrently with drains must show up exactly once:
// either in some drained batch or in the final leftover, never both.
func TestBufferConcurrentAppendDrain(t *testing.T) {
	const writers = 8
	const perWriter = 500

	b := NewBuffer()
	var wg sync.WaitGroup

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				b.Append("chan", fmt.Sprintf("%d-%d", w, i))
			}
		}(w)
	}

	stop := make(chan struct{})
	drainerDone := make(chan struct{})
	var batches [][]string
	go func() {
		defer close(drainerDone)
		for {
			select {
			case <-stop:
				// One last drain after all writers finished.
				batches = append(batches, b.Drain("chan"))
				return
			default:
				batches = append(batches, b.Drain("chan"))
			}
		}
	}()

	wg.Wait()
	close(stop)
	<-drainerDone

	seen := make(map[string]bool)
	total := 0
	for _, batch := range batches {
		for _, msg := range batch {
			if seen[msg] {
				t.Fatalf("message %q drained twice", msg)
			}
			seen[msg] = true
			total++
		}
	}
	if total != writers*perWriter {
		t.Fatalf("drained %d messages, want %d", total, writers*perWriter)
	}
}
