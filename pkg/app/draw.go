package app

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// 面板布局
const (
	panelX       = 40.0
	panelY       = 330.0
	panelWidth   = 220.0
	panelHeight  = 120.0
	panelGap     = 20.0
	panelsPerRow = 3
)

var (
	interactableColor = color.RGBA{R: 90, G: 170, B: 110, A: 255}
	lockedColor       = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	disabledColor     = color.RGBA{R: 170, G: 80, B: 80, A: 255}
)

// drawPanels 每个可见面板画一个矩形，透明度 = 面板进度
func (a *App) drawPanels(screen *ebiten.Image) {
	for i, v := range a.views {
		if !v.panel.IsVisible() {
			continue
		}

		x := panelX + float64(i%panelsPerRow)*(panelWidth+panelGap)
		y := panelY + float64(i/panelsPerRow)*(panelHeight+panelGap)

		base := interactableColor
		if !v.controller.IsInteractable() {
			base = lockedColor
		}
		if !a.entityManager.IsEnabled(v.entity) {
			base = disabledColor
		}

		alpha := v.panel.Progress()
		clr := color.RGBA{
			R: uint8(float64(base.R) * alpha),
			G: uint8(float64(base.G) * alpha),
			B: uint8(float64(base.B) * alpha),
			A: uint8(255 * alpha),
		}
		ebitenutil.DrawRect(screen, x, y, panelWidth, panelHeight, clr)
		ebitenutil.DebugPrintAt(screen, v.controller.Name(), int(x)+8, int(y)+8)
	}
}

// drawStatus 打印视图状态和最近事件
func (a *App) drawStatus(screen *ebiten.Image) {
	var b strings.Builder
	b.WriteString("1-9: show/hide  I: interactable  D: enable/disable  F11: fullscreen\n\n")

	for i, v := range a.views {
		marker := " "
		if i == a.selected {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %d %-12s %-8s interactable=%-5v enabled=%v\n",
			marker, i+1, v.config.ID, v.panel.State(),
			v.controller.IsInteractable(), a.entityManager.IsEnabled(v.entity))
	}

	b.WriteString("\nevents:\n")
	for _, e := range a.events {
		b.WriteString("  " + e + "\n")
	}

	ebitenutil.DebugPrintAt(screen, b.String(), 10, 10)
}
