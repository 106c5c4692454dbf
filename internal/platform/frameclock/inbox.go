package frameclock

// Inbox hands inputs from producer goroutines to the loop goroutine.
type Inbox[T any] struct {
	ch chan T
}

// NewInbox creates an inbox buffering up to size pending inputs.
func NewInbox[T any](size int) *Inbox[T] {
	if size <= 0 {
		size = 1
	}
	return &Inbox[T]{ch: make(chan T, size)}
}

// Post enqueues v without blocking. It reports false when the inbox is full
// and the input was dropped.
func (b *Inbox[T]) Post(v T) bool {
	select {
	case b.ch <- v:
		return true
	default:
		return false
	}
}

// Drain applies fn to every pending input and returns how many were handled.
func (b *Inbox[T]) Drain(fn func(T)) int {
	n := 0
	for {
		select {
		case v := <-b.ch:
			fn(v)
			n++
		default:
			return n
		}
	}
}
