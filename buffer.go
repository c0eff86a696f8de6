package bigint

import "fortio.org/safecast"

// inlineCap is how many digits fit inside the value itself before storage
// moves to a shared heap allocation; two digits occupy the footprint of one
// 64-bit pointer.
const inlineCap = 2

// heapBit marks heap mode in the size word; the logical size lives in the
// low bits.
const heapBit = uint32(1) << 31

// sharedBuffer is a reference-counted digit allocation. The count is not
// atomic: values sharing one buffer belong to a single goroutine at a time.
// The garbage collector frees the storage; the count only decides when a
// writer must clone. Abandoned sharers never decrement, which can leave the
// count high — that forces a redundant clone at worst, never aliasing.
type sharedBuffer struct {
	refs int
	data []uint32 // len(data) is the capacity
}

// buffer is a value-semantic digit sequence with two modes: up to inlineCap
// digits stored inline, or a pointer to a shared heap allocation. The zero
// value reads as the single digit 0 and materializes on first mutation.
//
// Invariants: inline mode has size <= inlineCap; heap mode has
// size <= len(heap.data) and heap.refs >= 1. Any mutation first ensures
// heap.refs == 1.
type buffer struct {
	size   uint32
	inline [inlineCap]uint32
	heap   *sharedBuffer
}

func newBuffer(n int, fill uint32) buffer {
	var b buffer
	if n <= inlineCap {
		for i := 0; i < n; i++ {
			b.inline[i] = fill
		}
		b.size = sizeWord(n)
		return b
	}
	b.heap = allocShared(n, nil, fill)
	b.size = sizeWord(n) | heapBit
	return b
}

func bufferOf(digits []uint32) buffer {
	var b buffer
	if len(digits) <= inlineCap {
		copy(b.inline[:], digits)
		b.size = sizeWord(len(digits))
		return b
	}
	b.heap = allocShared(len(digits), digits, 0)
	b.size = sizeWord(len(digits)) | heapBit
	return b
}

func sizeWord(n int) uint32 {
	u, err := safecast.Conv[uint32](n)
	if err != nil || u&heapBit != 0 {
		panic("bigint: buffer size out of range")
	}
	return u
}

func allocShared(capacity int, init []uint32, fill uint32) *sharedBuffer {
	sb := &sharedBuffer{refs: 1, data: make([]uint32, capacity)}
	n := copy(sb.data, init)
	for i := n; i < capacity; i++ {
		sb.data[i] = fill
	}
	return sb
}

func (b *buffer) isHeap() bool { return b.size&heapBit != 0 }

func (b *buffer) rawLen() int { return int(b.size &^ heapBit) }

// length reports the logical size; the zero value counts as one digit.
func (b *buffer) length() int {
	if n := b.rawLen(); n != 0 {
		return n
	}
	return 1
}

func (b *buffer) setLen(n int) {
	b.size = b.size&heapBit | sizeWord(n)
}

// at reads the digit at index i < length().
func (b *buffer) at(i int) uint32 {
	if b.rawLen() == 0 {
		return 0
	}
	if b.isHeap() {
		return b.heap.data[i]
	}
	return b.inline[i]
}

func (b *buffer) back() uint32 { return b.at(b.length() - 1) }

// materialize turns the zero value into an explicit single zero digit.
func (b *buffer) materialize() {
	if b.size == 0 {
		b.size = 1
		b.inline[0] = 0
	}
}

// ensureUnique clones the heap allocation when it is shared, so the caller
// may write through it.
func (b *buffer) ensureUnique() {
	b.materialize()
	if !b.isHeap() || b.heap.refs == 1 {
		return
	}
	b.heap.refs--
	b.heap = allocShared(len(b.heap.data), b.heap.data[:b.rawLen()], 0)
}

// digits returns the digit storage for writing; the buffer is exclusive on
// return.
func (b *buffer) digits() []uint32 {
	b.ensureUnique()
	if b.isHeap() {
		return b.heap.data[:b.rawLen()]
	}
	return b.inline[:b.rawLen()]
}

func (b *buffer) setBack(v uint32) {
	d := b.digits()
	d[len(d)-1] = v
}

// resizeFill grows the sequence to n digits, padding with fill. Shrinking
// only lowers the logical size and never reallocates or releases storage.
func (b *buffer) resizeFill(n int, fill uint32) {
	b.materialize()
	cur := b.rawLen()
	if n <= cur {
		b.setLen(n)
		return
	}
	if !b.isHeap() {
		if n <= inlineCap {
			for i := cur; i < n; i++ {
				b.inline[i] = fill
			}
			b.setLen(n)
			return
		}
		// Inflate: inline digits move to a fresh heap allocation.
		b.heap = allocShared(n, b.inline[:cur], fill)
		b.size = sizeWord(n) | heapBit
		return
	}
	if b.heap.refs > 1 || n > len(b.heap.data) {
		old := b.heap
		capacity := max(cur*3/2, n)
		b.heap = allocShared(capacity, old.data[:cur], fill)
		old.refs--
		b.setLen(n)
		return
	}
	for i := cur; i < n; i++ {
		b.heap.data[i] = fill
	}
	b.setLen(n)
}

func (b *buffer) push(v uint32) {
	b.resizeFill(b.length()+1, v)
}

func (b *buffer) pop() {
	b.materialize()
	b.setLen(b.rawLen() - 1)
}

// shareFrom makes b an O(1) copy of src: inline digits are copied by value,
// a heap allocation is shared by bumping its count.
func (b *buffer) shareFrom(src *buffer) {
	if b == src {
		return
	}
	b.release()
	if src.isHeap() {
		src.heap.refs++
	}
	*b = *src
}

// release drops b's interest in a shared allocation. The storage itself is
// garbage collected.
func (b *buffer) release() {
	if b.isHeap() {
		b.heap.refs--
		b.heap = nil
		b.size = 0
	}
}

func (b *buffer) eq(other *buffer) bool {
	n := b.length()
	if n != other.length() {
		return false
	}
	for i := 0; i < n; i++ {
		if b.at(i) != other.at(i) {
			return false
		}
	}
	return true
}
