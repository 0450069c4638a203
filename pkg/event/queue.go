// Package event 提供单线程游戏循环使用的逐帧事件队列
//
// 每种事件对应一个 Queue。事件在发送的当前帧和下一帧内可读，
// 每帧结束时调用 Update 轮换缓冲区，更早的事件被丢弃。
// 每个消费者持有自己的 Reader，保证每个事件只被同一消费者读取一次，
// 因此生产者与消费者的执行先后不影响正确性：本帧读不到的事件下一帧仍可读到。
package event

// Queue 双缓冲的逐帧事件队列
type Queue[T any] struct {
	current  []T    // 本帧发送的事件
	previous []T    // 上一帧发送的事件
	sent     uint64 // 已发送事件总数，同时作为下一个事件的序号
}

// NewQueue 创建空事件队列
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		current:  make([]T, 0, 8),
		previous: make([]T, 0, 8),
	}
}

// Send 发送事件
func (q *Queue[T]) Send(e T) {
	q.current = append(q.current, e)
	q.sent++
}

// Update 帧边界处轮换缓冲区
// 上一帧的事件被丢弃，本帧事件变为"上一帧"
func (q *Queue[T]) Update() {
	q.previous, q.current = q.current, q.previous[:0]
}

// firstSeq 返回仍可读的最早事件序号
func (q *Queue[T]) firstSeq() uint64 {
	return q.sent - uint64(len(q.current)) - uint64(len(q.previous))
}

// Reader 单个消费者的读取游标
type Reader[T any] struct {
	next uint64 // 下一个未读事件的序号
}

// NewReader 创建一个只读取此后发送事件的读取器
func (q *Queue[T]) NewReader() *Reader[T] {
	return &Reader[T]{next: q.sent}
}

// Read 按发送顺序返回此读取器尚未读取的所有事件，并推进游标
func (r *Reader[T]) Read(q *Queue[T]) []T {
	first := q.firstSeq()
	if r.next < first {
		// 读取器落后超过两帧，丢失的事件无法恢复
		r.next = first
	}
	if r.next >= q.sent {
		return nil
	}

	result := make([]T, 0, q.sent-r.next)
	seq := first
	for _, e := range q.previous {
		if seq >= r.next {
			result = append(result, e)
		}
		seq++
	}
	for _, e := range q.current {
		if seq >= r.next {
			result = append(result, e)
		}
		seq++
	}
	r.next = q.sent
	return result
}
