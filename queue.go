package tin

import "container/heap"

// queueItem is the value container.Heap.Push/Pop exchange with meshHeap.
type queueItem struct {
	t   int32
	err float64
}

// meshHeap adapts a *Mesh's heap-related fields to container/heap.Interface.
// It is a thin value wrapper: every method mutates through the embedded
// pointer, so meshHeap values are cheap and interchangeable.
//
// Ordering is by max error only (errs[i] > errs[j] is "less", making this a
// max-heap): the triangle with the worst pixel error always sits at the
// root. Implementations that need reference-identical meshes across ports
// must keep this exact sift order — no secondary sort key.
type meshHeap struct{ m *Mesh }

func (h meshHeap) Len() int { return len(h.m.heapTris) }

func (h meshHeap) Less(i, j int) bool { return h.m.heapErrs[i] > h.m.heapErrs[j] }

func (h meshHeap) Swap(i, j int) {
	ti, tj := h.m.heapTris[i], h.m.heapTris[j]
	h.m.heapTris[i], h.m.heapTris[j] = tj, ti
	h.m.heapErrs[i], h.m.heapErrs[j] = h.m.heapErrs[j], h.m.heapErrs[i]
	h.m.queueIndex[ti] = int32(j)
	h.m.queueIndex[tj] = int32(i)
}

func (h meshHeap) Push(x any) {
	item := x.(queueItem)
	h.m.queueIndex[item.t] = int32(len(h.m.heapTris))
	h.m.heapTris = append(h.m.heapTris, item.t)
	h.m.heapErrs = append(h.m.heapErrs, item.err)
}

func (h meshHeap) Pop() any {
	old := h.m.heapTris
	n := len(old) - 1
	t := old[n]
	h.m.heapTris = old[:n]

	oldErrs := h.m.heapErrs
	err := oldErrs[n]
	h.m.heapErrs = oldErrs[:n]

	return queueItem{t: t, err: err}
}

// queuePush enqueues triangle t with the given max error and adds rms to
// rmsSum. It is the sole entry point by which a triangle leaves pending
// and enters the heap.
func (m *Mesh) queuePush(t int32, maxError, rms float64) {
	heap.Push(meshHeap{m}, queueItem{t: t, err: maxError})
	m.rmsSum += rms
}

// queuePop removes and returns the triangle with the current worst error,
// decrementing rmsSum and clearing its queue index. Precondition: the
// heap is non-empty.
func (m *Mesh) queuePop() int32 {
	item := heap.Pop(meshHeap{m}).(queueItem)
	m.rmsSum -= m.rms[item.t]
	m.queueIndex[item.t] = -1

	return item.t
}

// queueRemove removes triangle t from wherever it currently resides: the
// heap (if queueIndex[t] >= 0) or the pending set (if queueIndex[t] == -1).
// Arbitrary-position heap removal follows the standard pattern: swap with
// the last element, then attempt a down-sift and, only if that made no
// progress, an up-sift — container/heap.Remove already implements exactly
// this.
//
// If t is in neither structure, the triangulation is broken; this is a
// programming error, not a caller mistake, and is reported by panicking
// with ErrBrokenTriangulation.
func (m *Mesh) queueRemove(t int32) {
	i := m.queueIndex[t]
	if i < 0 {
		if !m.pendingRemove(t) {
			panic(ErrBrokenTriangulation)
		}
		return
	}

	item := heap.Remove(meshHeap{m}, int(i)).(queueItem)
	m.rmsSum -= m.rms[item.t]
	m.queueIndex[item.t] = -1
}
