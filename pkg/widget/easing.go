package widget

import (
	"fmt"
	"math"
	"sort"
)

// Easing 缓动函数
// 输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]
//
// 参考：https://easings.net/
type Easing func(t float64) float64

// 缓动曲线名称（用于 YAML 配置）
const (
	EasingLinear     = "linear"
	EasingInQuad     = "in-quad"
	EasingOutQuad    = "out-quad"
	EasingInCubic    = "in-cubic"
	EasingOutCubic   = "out-cubic"
	EasingInOutCubic = "in-out-cubic"
	EasingOutExpo    = "out-expo"
)

var easings = map[string]Easing{
	EasingLinear: func(t float64) float64 { return t },
	// f(t) = t²
	EasingInQuad: func(t float64) float64 { return t * t },
	// f(t) = 1 - (1-t)²
	EasingOutQuad: func(t float64) float64 { return 1 - (1-t)*(1-t) },
	// f(t) = t³
	EasingInCubic: func(t float64) float64 { return t * t * t },
	// f(t) = 1 - (1-t)³
	EasingOutCubic: func(t float64) float64 { return 1 - math.Pow(1-t, 3) },
	EasingInOutCubic: func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	},
	// f(t) = 1 - 2^(-10t)，t=1 时精确返回 1
	EasingOutExpo: func(t float64) float64 {
		if t >= 1.0 {
			return 1.0
		}
		return 1 - math.Pow(2, -10*t)
	},
}

// EasingByName 按名称查找缓动函数，未知名称返回线性缓动
func EasingByName(name string) Easing {
	if e, ok := easings[name]; ok {
		return e
	}
	return easings[EasingLinear]
}

// LookupEasing 按名称查找缓动函数，空名称视为 linear
func LookupEasing(name string) (Easing, error) {
	if name == "" {
		return easings[EasingLinear], nil
	}
	e, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (available: %v)", name, EasingNames())
	}
	return e, nil
}

// EasingNames 返回所有已注册的缓动名称（已排序）
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
