package view

import (
	"reflect"

	"github.com/decker502/viewkit/pkg/event"
)

// EventSource widget 生命周期事件源
type EventSource = event.Source

// Widget 控制器绑定的视图组件
//
// widget 自己负责显示/隐藏动画，只通过四个事件源报告阶段的开始和结束。
// 事件不携带参数。
type Widget interface {
	ShowStartEvent() EventSource
	ShowFinishEvent() EventSource
	HideStartEvent() EventSource
	HideFinishEvent() EventSource
}

// isNil 检查接口内部是否为 nil 指针
func isNil(x any) bool {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
