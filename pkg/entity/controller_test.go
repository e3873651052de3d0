package entity

import (
	"errors"
	"testing"
)

type testProperties struct {
	BaseProperties
	Speed float64
}

// TestControllerConfigure 测试属性配置
func TestControllerConfigure(t *testing.T) {
	var c Controller[testProperties]

	if c.IsConfigured() {
		t.Error("new controller should not be configured")
	}

	props := testProperties{BaseProperties: BaseProperties{Name: "hud"}, Speed: 2}
	if err := c.Configure(props); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	if !c.IsConfigured() {
		t.Error("IsConfigured() = false after Configure")
	}
	if got := c.Properties(); got != props {
		t.Errorf("Properties() = %+v, want %+v", got, props)
	}
	if got := c.Properties().PropertiesName(); got != "hud" {
		t.Errorf("PropertiesName() = %q, want %q", got, "hud")
	}
}

// TestControllerConfigureTwice 测试重复配置
func TestControllerConfigureTwice(t *testing.T) {
	var c Controller[testProperties]
	first := testProperties{BaseProperties: BaseProperties{Name: "first"}}

	if err := c.Configure(first); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	err := c.Configure(testProperties{BaseProperties: BaseProperties{Name: "second"}})
	if !errors.Is(err, ErrAlreadyConfigured) {
		t.Errorf("second Configure() error = %v, want ErrAlreadyConfigured", err)
	}
	if c.Properties().Name != "first" {
		t.Errorf("properties overwritten: %q", c.Properties().Name)
	}
}

// TestControllerListeners 测试基础监听钩子
func TestControllerListeners(t *testing.T) {
	var c Controller[BaseProperties]

	c.RemoveListeners() // 未激活时停用是空操作
	if c.IsListening() {
		t.Error("IsListening() = true before AddListeners")
	}

	c.AddListeners()
	if !c.IsListening() {
		t.Error("IsListening() = false after AddListeners")
	}

	c.RemoveListeners()
	c.RemoveListeners()
	if c.IsListening() {
		t.Error("IsListening() = true after RemoveListeners")
	}
}
