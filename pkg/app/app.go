// Package app 提供视图演示应用
//
// 从视图配置创建面板和视图控制器，挂到实体宿主上，
// 用键盘驱动显示/隐藏，并把控制器事件显示在屏幕上。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/viewkit/pkg/config"
	"github.com/decker502/viewkit/pkg/ecs"
	"github.com/decker502/viewkit/pkg/view"
	"github.com/decker502/viewkit/pkg/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 窗口逻辑尺寸
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// 事件日志最多保留的行数
const maxEventLines = 8

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// CatalogPath 视图配置路径，为空使用 config.DefaultViewCatalogPath
	CatalogPath string
}

// viewEntry 一个视图实体：面板 + 控制器
type viewEntry struct {
	entity     ecs.EntityID
	config     *config.ViewConfig
	panel      *widget.Panel
	controller *view.Default
}

// App 是演示应用，实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager
	views         []*viewEntry
	selected      int
	events        []string
	verbose       bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.CatalogPath
	if path == "" {
		path = config.DefaultViewCatalogPath
	}
	catalog, err := config.LoadViewCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("视图配置加载失败: %w", err)
	}
	log.Printf("[Config] 成功加载 %d 个视图配置", catalog.Len())

	a := &App{
		entityManager: ecs.NewEntityManager(),
		verbose:       cfg.Verbose,
	}
	for _, id := range catalog.IDs() {
		vc, _ := catalog.Get(id)
		if err := a.addView(vc); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// addView 创建视图实体并启用
func (a *App) addView(vc *config.ViewConfig) error {
	panel := widget.NewPanel(vc.ID, vc.Show.Phase(), vc.Hide.Phase(), vc.StartVisible)

	controller, err := view.New(panel, view.NewProperties(vc.DisplayName()))
	if err != nil {
		return fmt.Errorf("视图 %q 创建控制器失败: %w", vc.ID, err)
	}
	controller.ToggleInteractability(vc.IsInteractable())

	controller.ShowStarted().Add(func(c *view.Default) { a.recordEvent(c, "ShowStarted") })
	controller.ShowFinished().Add(func(c *view.Default) { a.recordEvent(c, "ShowFinished") })
	controller.HideStarted().Add(func(c *view.Default) { a.recordEvent(c, "HideStarted") })
	controller.HideFinished().Add(func(c *view.Default) { a.recordEvent(c, "HideFinished") })

	id := a.entityManager.CreateEntity()
	ecs.AddComponent(a.entityManager, id, panel)
	ecs.AddComponent(a.entityManager, id, controller)
	a.entityManager.SetEnabled(id, true)

	a.views = append(a.views, &viewEntry{
		entity:     id,
		config:     vc,
		panel:      panel,
		controller: controller,
	})
	log.Printf("[App] 视图 %q 已创建 (entity %d)", vc.ID, id)
	return nil
}

func (a *App) recordEvent(c *view.Default, name string) {
	line := fmt.Sprintf("%s: %s", c.Name(), name)
	log.Printf("[App] %s", line)

	a.events = append(a.events, line)
	if len(a.events) > maxEventLines {
		a.events = a.events[len(a.events)-maxEventLines:]
	}
}

// ViewCount 返回视图数量
func (a *App) ViewCount() int {
	return len(a.views)
}

// Controller 返回第 i 个视图的控制器
func (a *App) Controller(i int) (*view.Default, bool) {
	if i < 0 || i >= len(a.views) {
		return nil, false
	}
	return a.views[i].controller, true
}

// Events 返回最近的控制器事件
func (a *App) Events() []string {
	return append([]string(nil), a.events...)
}

// Select 选中第 i 个视图，并切换其显示/隐藏
func (a *App) Select(i int) {
	if i < 0 || i >= len(a.views) {
		return
	}
	a.selected = i
	a.views[i].panel.Toggle()
}

// ToggleSelectedInteractability 切换选中视图的可交互标志
func (a *App) ToggleSelectedInteractability() {
	if len(a.views) == 0 {
		return
	}
	c := a.views[a.selected].controller
	c.ToggleInteractability(!c.IsInteractable())
	log.Printf("[App] %s interactable = %v", c.Name(), c.IsInteractable())
}

// ToggleSelectedEnabled 启用/停用选中视图的实体
// 停用后控制器不再收到面板事件
func (a *App) ToggleSelectedEnabled() {
	if len(a.views) == 0 {
		return
	}
	id := a.views[a.selected].entity
	a.entityManager.SetEnabled(id, !a.entityManager.IsEnabled(id))
}

// Step 推进所有面板
// deltaTime 为距上一帧的秒数
func (a *App) Step(deltaTime float64) {
	for _, v := range a.views {
		v.panel.Update(deltaTime)
	}
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(WindowWidth, WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	a.handleInput()

	a.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

// handleInput 键盘：1-9 切换视图，I 切换可交互，D 启用/停用实体，F11 全屏
func (a *App) handleInput() {
	for i := 0; i < len(a.views) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			a.Select(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		a.ToggleSelectedInteractability()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		a.ToggleSelectedEnabled()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 32, G: 40, B: 48, A: 255})
	a.drawPanels(screen)
	a.drawStatus(screen)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
