package event

// Source 可订阅的无参数事件源
// RemoveListener 对不存在的句柄必须是空操作
type Source interface {
	AddListener(fn func()) Handle
	RemoveListener(h Handle) bool
}

// Signal 不带参数的事件源
//
// widget 的 ShowStart/ShowFinish/HideStart/HideFinish 都是 Signal。
type Signal struct {
	slot Slot[struct{}]
}

// AddListener 添加监听器
func (s *Signal) AddListener(fn func()) Handle {
	if fn == nil {
		return 0
	}
	return s.slot.Add(func(struct{}) { fn() })
}

// RemoveListener 移除监听器，重复移除是空操作
func (s *Signal) RemoveListener(h Handle) bool {
	return s.slot.Remove(h)
}

// Invoke 触发事件
func (s *Signal) Invoke() {
	s.slot.Notify(struct{}{})
}

// ListenerCount 返回监听器数量
func (s *Signal) ListenerCount() int {
	return s.slot.Len()
}

var _ Source = (*Signal)(nil)
