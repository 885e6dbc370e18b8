package lbq

import (
	"sort"
	"sync"
	"testing"
)

func TestNewPanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New(0) did not panic")
		}
	}()
	New[int](0)
}

func TestNewPanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New(3) did not panic")
		}
	}()
	New[int](3)
}

func TestNewPanicsAboveMaxCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New(2^33) did not panic")
		}
	}()
	New[int](1 << 33)
}

func TestFillThenDrain(t *testing.T) {
	q := New[int](4)
	for i := 0; i < 4; i++ {
		if err := q.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d) = %v, want nil", i, err)
		}
	}
	if err := q.Enqueue(99); err == nil {
		t.Fatalf("5th Enqueue succeeded, want ErrFull")
	} else if fe, ok := err.(*FullError[int]); !ok || fe.Value != 99 {
		t.Fatalf("5th Enqueue error = %v, want FullError{99}", err)
	}

	for i := 0; i < 4; i++ {
		v, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue() #%d returned ok=false", i)
		}
		if v != i {
			t.Fatalf("Dequeue() #%d = %d, want %d (FIFO order for single producer)", i, v, i)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("5th Dequeue returned ok=true on empty queue")
	}
}

func TestFullDoesNotModifyState(t *testing.T) {
	q := New[int](2)
	_ = q.Enqueue(1)
	_ = q.Enqueue(2)
	before := q.head.Load()
	if err := q.Enqueue(3); err == nil {
		t.Fatalf("Enqueue on full queue succeeded")
	}
	if q.head.Load() != before {
		t.Fatalf("head advanced on a failed Enqueue")
	}
}

func TestFIFOPerProducerSingleConsumer(t *testing.T) {
	const n = 2000
	q := New[int](256)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < n; i++ {
			for q.Enqueue(i) != nil {
				// full, spin until a consumer frees a cell.
			}
		}
	}()

	got := make([]int, 0, n)
	for len(got) < n {
		if v, ok := q.Dequeue(); ok {
			got = append(got, v)
		}
	}
	<-done

	for i, v := range got {
		if v != i {
			t.Fatalf("dequeue order broken at index %d: got %d, want %d", i, v, i)
		}
	}
}

func TestNoLossOrDuplicationMultiProducerMultiConsumer(t *testing.T) {
	const producers = 8
	const perProducer = 500
	const total = producers * perProducer

	q := New[int](128)
	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				v := base*perProducer + i
				for q.Enqueue(v) != nil {
				}
			}
		}(p)
	}

	var mu sync.Mutex
	got := make([]int, 0, total)
	var consumers sync.WaitGroup
	done := make(chan struct{})
	consumers.Add(4)
	for c := 0; c < 4; c++ {
		go func() {
			defer consumers.Done()
			for {
				select {
				case <-done:
					// Drain whatever remains before exiting.
					for {
						v, ok := q.Dequeue()
						if !ok {
							return
						}
						mu.Lock()
						got = append(got, v)
						mu.Unlock()
					}
				default:
					if v, ok := q.Dequeue(); ok {
						mu.Lock()
						got = append(got, v)
						mu.Unlock()
					}
				}
			}
		}()
	}

	wg.Wait()
	close(done)
	consumers.Wait()

	if len(got) != total {
		t.Fatalf("dequeued %d values, want %d", len(got), total)
	}
	sort.Ints(got)
	for i, v := range got {
		if v != i {
			t.Fatalf("multiset mismatch at sorted index %d: got %d, want %d", i, v, i)
		}
	}
}

func TestCapacityReported(t *testing.T) {
	q := New[string](64)
	if q.Capacity() != 64 {
		t.Fatalf("Capacity() = %d, want 64", q.Capacity())
	}
}

func TestEnqueueDequeueGenericZeroValue(t *testing.T) {
	q := New[string](2)
	if v, ok := q.Dequeue(); ok || v != "" {
		t.Fatalf("Dequeue on empty generic queue = (%q, %v), want (\"\", false)", v, ok)
	}
}
