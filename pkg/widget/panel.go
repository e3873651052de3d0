// Package widget 提供一个带显示/隐藏动画的参考视图组件
//
// Panel 自己推进显示/隐藏阶段，并通过四个事件源报告
// 每个阶段的开始与结束。控制器只订阅这些事件，不读取动画细节。
package widget

import (
	"log"

	"github.com/decker502/viewkit/pkg/event"
)

// State 面板阶段状态
type State int

const (
	StateHidden  State = iota // 完全隐藏
	StateShowing              // 正在显示
	StateShown                // 完全显示
	StateHiding               // 正在隐藏
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateShowing:
		return "showing"
	case StateShown:
		return "shown"
	case StateHiding:
		return "hiding"
	default:
		return "unknown"
	}
}

// Phase 单个阶段（显示或隐藏）的动画参数
type Phase struct {
	Duration float64 // 秒，0 表示立即完成
	Easing   Easing  // nil 视为线性
}

// Panel 显示/隐藏面板
//
// 状态机：Hidden → Showing → Shown → Hiding → Hidden。
// 在 Showing 中调用 Hide（或反之）会从当前进度反向播放，
// 被打断的阶段不会触发 Finish 事件。
type Panel struct {
	name string
	show Phase
	hide Phase

	state State
	// 线性可见度，0 = 完全隐藏，1 = 完全显示
	amount float64

	showStart  event.Signal
	showFinish event.Signal
	hideStart  event.Signal
	hideFinish event.Signal
}

// NewPanel 创建面板
// startVisible 为 true 时面板初始为 Shown，不触发任何事件
func NewPanel(name string, show, hide Phase, startVisible bool) *Panel {
	p := &Panel{
		name:  name,
		show:  show,
		hide:  hide,
		state: StateHidden,
	}
	if startVisible {
		p.state = StateShown
		p.amount = 1
	}
	return p
}

// Name 返回面板名称
func (p *Panel) Name() string {
	return p.name
}

// ShowStartEvent 显示开始事件
func (p *Panel) ShowStartEvent() event.Source { return &p.showStart }

// ShowFinishEvent 显示完成事件
func (p *Panel) ShowFinishEvent() event.Source { return &p.showFinish }

// HideStartEvent 隐藏开始事件
func (p *Panel) HideStartEvent() event.Source { return &p.hideStart }

// HideFinishEvent 隐藏完成事件
func (p *Panel) HideFinishEvent() event.Source { return &p.hideFinish }

// State 返回当前状态
func (p *Panel) State() State {
	return p.state
}

// IsVisible 除 Hidden 以外都视为可见
func (p *Panel) IsVisible() bool {
	return p.state != StateHidden
}

// Progress 返回缓动后的可见度 ∈ [0, 1]
func (p *Panel) Progress() float64 {
	switch p.state {
	case StateShowing:
		return clamp01(ease(p.show.Easing, p.amount))
	case StateHiding:
		// 隐藏阶段的进度是 1 - amount
		return clamp01(1 - ease(p.hide.Easing, 1-p.amount))
	default:
		return p.amount
	}
}

// Show 开始显示
// 已经在显示或已显示时不做任何事
func (p *Panel) Show() {
	if p.state == StateShowing || p.state == StateShown {
		return
	}

	log.Printf("[Panel] %s: %s -> showing", p.name, p.state)
	p.state = StateShowing
	p.showStart.Invoke()

	// 监听器可能在回调里调用了 Hide
	if p.state == StateShowing && p.show.Duration <= 0 {
		p.finishShow()
	}
}

// Hide 开始隐藏
// 已经在隐藏或已隐藏时不做任何事
func (p *Panel) Hide() {
	if p.state == StateHiding || p.state == StateHidden {
		return
	}

	log.Printf("[Panel] %s: %s -> hiding", p.name, p.state)
	p.state = StateHiding
	p.hideStart.Invoke()

	if p.state == StateHiding && p.hide.Duration <= 0 {
		p.finishHide()
	}
}

// Toggle 在显示和隐藏之间切换
func (p *Panel) Toggle() {
	if p.state == StateShowing || p.state == StateShown {
		p.Hide()
	} else {
		p.Show()
	}
}

// Update 推进当前阶段
// deltaTime 为距上一帧的秒数
func (p *Panel) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	switch p.state {
	case StateShowing:
		p.amount += step(deltaTime, p.show.Duration)
		if p.amount >= 1 {
			p.finishShow()
		}
	case StateHiding:
		p.amount -= step(deltaTime, p.hide.Duration)
		if p.amount <= 0 {
			p.finishHide()
		}
	}
}

func (p *Panel) finishShow() {
	p.amount = 1
	p.state = StateShown
	p.showFinish.Invoke()
}

func (p *Panel) finishHide() {
	p.amount = 0
	p.state = StateHidden
	p.hideFinish.Invoke()
}

func step(deltaTime, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return deltaTime / duration
}

func ease(e Easing, t float64) float64 {
	t = clamp01(t)
	if e == nil {
		return t
	}
	return e(t)
}
