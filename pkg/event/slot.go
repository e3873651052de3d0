// Package event 提供同步的观察者列表
//
// Slot 按订阅顺序通知所有订阅者，Signal 是不带参数的版本，
// 用作 widget 的生命周期事件源。
// 所有操作都在调用方的线程上同步执行，不加锁（单线程游戏循环）。
package event

// Handle 订阅句柄，由 Add/AddListener 返回，用于取消订阅
// 零值不对应任何订阅者
type Handle uint64

type subscriber[T any] struct {
	handle Handle
	fn     func(T)
}

// Slot 有序的多播回调槽
//
// 零值可直接使用。
type Slot[T any] struct {
	nextHandle  Handle
	subscribers []subscriber[T]
}

// Add 追加一个订阅者，返回用于取消订阅的句柄
// 同一个函数可以重复订阅，每次都是独立的订阅者
func (s *Slot[T]) Add(fn func(T)) Handle {
	if fn == nil {
		return 0
	}
	s.nextHandle++
	s.subscribers = append(s.subscribers, subscriber[T]{handle: s.nextHandle, fn: fn})
	return s.nextHandle
}

// Remove 取消订阅
// 句柄不存在（或已取消）时不做任何事，返回 false
func (s *Slot[T]) Remove(h Handle) bool {
	if h == 0 {
		return false
	}
	for i, sub := range s.subscribers {
		if sub.handle == h {
			// 复制而不是原地删除：Notify 可能正持有旧切片
			next := make([]subscriber[T], 0, len(s.subscribers)-1)
			next = append(next, s.subscribers[:i]...)
			next = append(next, s.subscribers[i+1:]...)
			s.subscribers = next
			return true
		}
	}
	return false
}

// Notify 按订阅顺序调用当前所有订阅者
// 没有订阅者时为空操作。通知过程中的增删从下一次 Notify 起生效。
func (s *Slot[T]) Notify(v T) {
	if len(s.subscribers) == 0 {
		return
	}
	snapshot := s.subscribers
	for _, sub := range snapshot {
		sub.fn(v)
	}
}

// Len 返回当前订阅者数量
func (s *Slot[T]) Len() int {
	return len(s.subscribers)
}

// Clear 移除所有订阅者
func (s *Slot[T]) Clear() {
	s.subscribers = nil
}

// Listeners 只允许订阅和取消订阅的 Slot 视图
// 持有者不能触发通知或清空其他订阅者
type Listeners[T any] struct {
	slot *Slot[T]
}

// Listeners 返回该槽的只订阅视图
func (s *Slot[T]) Listeners() Listeners[T] {
	return Listeners[T]{slot: s}
}

// Add 追加一个订阅者，见 Slot.Add
func (l Listeners[T]) Add(fn func(T)) Handle {
	return l.slot.Add(fn)
}

// Remove 取消订阅，见 Slot.Remove
func (l Listeners[T]) Remove(h Handle) bool {
	return l.slot.Remove(h)
}

// Len 返回当前订阅者数量
func (l Listeners[T]) Len() int {
	return l.slot.Len()
}
