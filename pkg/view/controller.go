// Package view 提供视图控制器
//
// 控制器把 widget 的四个匿名生命周期事件（显示开始/结束、隐藏开始/结束）
// 转发为带类型的、属于单个控制器的回调槽，
// 并保存一个可交互标志供上层逻辑查询。
package view

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/viewkit/pkg/entity"
	"github.com/decker502/viewkit/pkg/event"
)

// ErrNilWidget 控制器必须绑定 widget
var ErrNilWidget = errors.New("view: widget is nil")

// Controller 视图控制器
//
// 状态机：Inactive → Subscribed → Inactive。
// OnActivate 向 widget 注册四个转发处理器，OnDeactivate 移除它们；
// 停用后 widget 的事件不会再到达控制器。
type Controller[P entity.Properties] struct {
	base   entity.Controller[P]
	widget Widget

	showStarted  event.Slot[*Controller[P]]
	showFinished event.Slot[*Controller[P]]
	hideStarted  event.Slot[*Controller[P]]
	hideFinished event.Slot[*Controller[P]]

	isInteractable bool

	// widget 事件源上的订阅句柄，零值表示未订阅
	relays [relayCount]relay
}

// Default 使用默认属性的视图控制器
type Default = Controller[Properties]

const (
	relayShowStart = iota
	relayShowFinish
	relayHideStart
	relayHideFinish
	relayCount
)

type relay struct {
	source EventSource
	handle event.Handle
}

// New 创建绑定到 widget 的控制器
//
// widget 只在这里设置一次，之后不可更换；
// widget 或其任一事件源为 nil 时立即返回 ErrNilWidget。
func New[P entity.Properties](w Widget, props P) (*Controller[P], error) {
	if w == nil || isNil(w) {
		return nil, ErrNilWidget
	}
	if err := checkEventSources(w); err != nil {
		return nil, err
	}

	c := &Controller[P]{
		widget:         w,
		isInteractable: true,
	}
	if err := c.base.Configure(props); err != nil {
		return nil, err
	}
	return c, nil
}

// NewDefault 创建使用默认属性的控制器
func NewDefault(w Widget) (*Default, error) {
	return New(w, Properties{})
}

// Widget 返回绑定的 widget
func (c *Controller[P]) Widget() Widget {
	return c.widget
}

// Properties 返回控制器属性
func (c *Controller[P]) Properties() P {
	return c.base.Properties()
}

// Name 返回属性中的名称
func (c *Controller[P]) Name() string {
	return c.base.Properties().PropertiesName()
}

// ShowStarted widget 开始显示时触发
func (c *Controller[P]) ShowStarted() event.Listeners[*Controller[P]] {
	return c.showStarted.Listeners()
}

// ShowFinished widget 显示完成时触发
func (c *Controller[P]) ShowFinished() event.Listeners[*Controller[P]] {
	return c.showFinished.Listeners()
}

// HideStarted widget 开始隐藏时触发
func (c *Controller[P]) HideStarted() event.Listeners[*Controller[P]] {
	return c.hideStarted.Listeners()
}

// HideFinished widget 隐藏完成时触发
func (c *Controller[P]) HideFinished() event.Listeners[*Controller[P]] {
	return c.hideFinished.Listeners()
}

// IsInteractable 返回最后一次 ToggleInteractability 设置的值，默认 true
func (c *Controller[P]) IsInteractable() bool {
	return c.isInteractable
}

// ToggleInteractability 设置可交互标志
// 只保存标志，不触发任何回调
func (c *Controller[P]) ToggleInteractability(value bool) {
	c.isInteractable = value
}

// IsSubscribed 是否处于 Subscribed 状态
func (c *Controller[P]) IsSubscribed() bool {
	return c.relays[relayShowStart].handle != 0
}

// OnActivate 激活：先调用基础钩子，再向 widget 注册四个转发处理器
func (c *Controller[P]) OnActivate() {
	if c.IsSubscribed() {
		// 宿主应保证不会重复激活；这里先移除旧订阅，避免重复转发
		log.Printf("[ViewController] 警告: %q 重复激活，先停用", c.Name())
		c.OnDeactivate()
	}

	c.base.AddListeners()

	c.relays[relayShowStart] = subscribe(c.widget.ShowStartEvent(), c.onShowStarted)
	c.relays[relayShowFinish] = subscribe(c.widget.ShowFinishEvent(), c.onShowFinished)
	c.relays[relayHideStart] = subscribe(c.widget.HideStartEvent(), c.onHideStarted)
	c.relays[relayHideFinish] = subscribe(c.widget.HideFinishEvent(), c.onHideFinished)

	log.Printf("[ViewController] %q 已激活", c.Name())
}

// OnDeactivate 停用：移除四个转发处理器，再调用基础钩子
// 未激活时调用是空操作
func (c *Controller[P]) OnDeactivate() {
	wasSubscribed := c.IsSubscribed()

	c.removeRelays()
	c.base.RemoveListeners()

	if wasSubscribed {
		log.Printf("[ViewController] %q 已停用", c.Name())
	}
}

func (c *Controller[P]) removeRelays() {
	for i := range c.relays {
		r := &c.relays[i]
		if r.source != nil && r.handle != 0 {
			r.source.RemoveListener(r.handle)
		}
		*r = relay{}
	}
}

// checkEventSources 四个事件源都必须存在
func checkEventSources(w Widget) error {
	sources := []struct {
		name   string
		source EventSource
	}{
		{"ShowStart", w.ShowStartEvent()},
		{"ShowFinish", w.ShowFinishEvent()},
		{"HideStart", w.HideStartEvent()},
		{"HideFinish", w.HideFinishEvent()},
	}
	for _, s := range sources {
		if s.source == nil || isNil(s.source) {
			return fmt.Errorf("%w: %s event source is nil", ErrNilWidget, s.name)
		}
	}
	return nil
}

func subscribe(source EventSource, fn func()) relay {
	return relay{source: source, handle: source.AddListener(fn)}
}

func (c *Controller[P]) onShowStarted() {
	c.showStarted.Notify(c)
}

func (c *Controller[P]) onShowFinished() {
	c.showFinished.Notify(c)
}

func (c *Controller[P]) onHideStarted() {
	c.hideStarted.Notify(c)
}

func (c *Controller[P]) onHideFinished() {
	c.hideFinished.Notify(c)
}

// 编译期检查：控制器实现宿主生命周期接口
var _ entity.Lifecycle = (*Default)(nil)
