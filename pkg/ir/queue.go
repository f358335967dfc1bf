package ir

// QueueSize is the size of the Queue backing store.
const QueueSize = 8

// QueueCapacity is the number of unread bytes a Queue retains.
const QueueCapacity = QueueSize - 1

// Queue holds received bytes, newest first. When full, pushing drops the
// oldest unread byte. The zero value is an empty queue.
type Queue struct {
	buf   [QueueSize]byte
	count int
}

// Push inserts v as the newest entry. It returns true when an unread
// byte was dropped.
func (q *Queue) Push(v byte) (dropped bool) {
	for i := q.count; i > 0; i-- {
		q.buf[i] = q.buf[i-1]
	}
	q.buf[0] = v
	q.count++
	if q.count > QueueCapacity {
		q.count = QueueCapacity
		dropped = true
	}
	return
}

// Len returns the number of unread bytes.
func (q *Queue) Len() int {
	return q.count
}

// Read removes and returns the oldest unread byte, or 0 if the queue is
// empty. Use Len to tell an empty queue from a received zero.
func (q *Queue) Read() byte {
	if q.count == 0 {
		return 0
	}
	q.count--
	return q.buf[q.count]
}

// Reset discards all unread bytes.
func (q *Queue) Reset() {
	q.count = 0
}
