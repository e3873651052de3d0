package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testCatalog = `
views:
  - id: menu
    name: Menu
    show: { duration: 1, easing: linear }
    hide: { duration: 1, easing: linear }
  - id: hud
    name: HUD
    show: { duration: 0 }
    hide: { duration: 0 }
    start_visible: true
    interactable: false
`

func newTestApp(t *testing.T) *App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "views.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := NewApp(Config{CatalogPath: path})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return a
}

// TestNewApp 测试从配置创建视图
func TestNewApp(t *testing.T) {
	a := newTestApp(t)

	if a.ViewCount() != 2 {
		t.Fatalf("ViewCount() = %d, want 2", a.ViewCount())
	}

	menu, _ := a.Controller(0)
	if menu.Name() != "Menu" || !menu.IsInteractable() {
		t.Errorf("menu controller = %q interactable=%v", menu.Name(), menu.IsInteractable())
	}
	if !menu.IsSubscribed() {
		t.Error("menu controller should be activated by the host")
	}

	hud, _ := a.Controller(1)
	if hud.IsInteractable() {
		t.Error("hud should start non-interactable")
	}

	if _, ok := a.Controller(5); ok {
		t.Error("Controller(5) should not exist")
	}
}

// TestNewAppMissingCatalog 测试配置文件不存在
func TestNewAppMissingCatalog(t *testing.T) {
	_, err := NewApp(Config{CatalogPath: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Error("expected error for missing catalog")
	}
}

// TestSelectRelaysEvents 测试切换视图时控制器事件被记录
func TestSelectRelaysEvents(t *testing.T) {
	a := newTestApp(t)

	a.Select(0)
	a.Step(0.5)
	a.Step(0.5)
	a.Select(0)
	a.Step(1)

	want := []string{
		"Menu: ShowStarted",
		"Menu: ShowFinished",
		"Menu: HideStarted",
		"Menu: HideFinished",
	}
	if !reflect.DeepEqual(a.Events(), want) {
		t.Errorf("Events() = %v, want %v", a.Events(), want)
	}
}

// TestToggleSelectedEnabled 测试停用实体后不再收到事件
func TestToggleSelectedEnabled(t *testing.T) {
	a := newTestApp(t)

	a.Select(1) // hud 初始可见，切换为隐藏（立即完成）
	a.ToggleSelectedEnabled()
	a.Select(1) // 再次显示，但控制器已停用

	want := []string{"HUD: HideStarted", "HUD: HideFinished"}
	if !reflect.DeepEqual(a.Events(), want) {
		t.Errorf("Events() = %v, want %v", a.Events(), want)
	}

	hud, _ := a.Controller(1)
	if hud.IsSubscribed() {
		t.Error("controller still subscribed after disabling entity")
	}

	a.ToggleSelectedEnabled()
	if !hud.IsSubscribed() {
		t.Error("controller not resubscribed after enabling entity")
	}
}

// TestToggleSelectedInteractability 测试切换可交互标志不产生事件
func TestToggleSelectedInteractability(t *testing.T) {
	a := newTestApp(t)
	a.selected = 0

	a.ToggleSelectedInteractability()
	menu, _ := a.Controller(0)
	if menu.IsInteractable() {
		t.Error("IsInteractable() = true after toggle")
	}
	a.ToggleSelectedInteractability()
	if !menu.IsInteractable() {
		t.Error("IsInteractable() = false after second toggle")
	}

	if len(a.Events()) != 0 {
		t.Errorf("interactability toggle produced events: %v", a.Events())
	}
}

// TestEventLogLimit 测试事件日志长度上限
func TestEventLogLimit(t *testing.T) {
	a := newTestApp(t)

	for i := 0; i < 10; i++ {
		a.Select(1) // hud 零时长，每次产生两个事件
	}

	if got := len(a.Events()); got != maxEventLines {
		t.Errorf("len(Events()) = %d, want %d", got, maxEventLines)
	}
}

// TestSelectOutOfRange 测试越界选择
func TestSelectOutOfRange(t *testing.T) {
	a := newTestApp(t)
	a.Select(-1)
	a.Select(10)

	if a.selected != 0 || len(a.Events()) != 0 {
		t.Error("out-of-range Select changed state")
	}
}
