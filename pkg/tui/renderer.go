// Package tui 在终端中绘制玩家血条
//
// 与 ebiten 前端共享 health.State、配置和插值函数，只替换绘制层。
package tui

import (
	"image/color"
	"math"

	"github.com/decker502/healthbar/pkg/config"
	"github.com/decker502/healthbar/pkg/health"
	"github.com/decker502/healthbar/pkg/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	filledCell = '█'
	emptyCell  = '░'

	barLeft  = 2 // 血条左边距（列）
	labelRow = 1
	barRow   = 2
	helpRow  = 4
	noteRow  = 6
)

// HelpText 按键说明
const HelpText = "d: damage  h: heal  +/-: max health  r: reset  q: quit"

// Renderer 终端血条渲染器
type Renderer struct {
	screen  tcell.Screen
	palette config.HealthBarPalette
	width   int // 血条格数
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen, palette config.HealthBarPalette, width int) *Renderer {
	if width <= 0 {
		width = config.TerminalBarWidth
	}
	return &Renderer{screen: screen, palette: palette, width: width}
}

// View 一帧需要绘制的数据
type View struct {
	Current   float64
	Max       float64
	Displayed float64 // 显示比例 [0, 1]
	Band      health.Band
	Note      string // 底部提示（例如死亡提示），为空不显示
}

// Draw 清屏并绘制一帧
func (r *Renderer) Draw(v View) {
	r.screen.Clear()

	label := systems.HealthLabel(v.Current, v.Max)
	// 标签在血条上方居中
	labelX := barLeft + (r.width-runewidth.StringWidth(label))/2
	if labelX < barLeft {
		labelX = barLeft
	}
	r.drawText(labelX, labelRow, label, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	filled := FilledCells(r.width, v.Displayed)
	fillStyle := tcell.StyleDefault.Foreground(toTcell(r.palette.ForBand(v.Band)))
	emptyStyle := tcell.StyleDefault.Foreground(toTcell(r.palette.Background))

	r.screen.SetContent(barLeft-1, barRow, '[', nil, tcell.StyleDefault)
	for i := 0; i < r.width; i++ {
		if i < filled {
			r.screen.SetContent(barLeft+i, barRow, filledCell, nil, fillStyle)
		} else {
			r.screen.SetContent(barLeft+i, barRow, emptyCell, nil, emptyStyle)
		}
	}
	r.screen.SetContent(barLeft+r.width, barRow, ']', nil, tcell.StyleDefault)

	r.drawText(barLeft, helpRow, HelpText, tcell.StyleDefault.Foreground(tcell.ColorGray))
	if v.Note != "" {
		r.drawText(barLeft, noteRow, v.Note, tcell.StyleDefault.Foreground(toTcell(r.palette.Low)).Bold(true))
	}

	r.screen.Show()
}

// drawText 按显示宽度逐字符绘制，宽字符占两列
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// FilledCells 计算填充格数（四舍五入，限制在 [0, width]）
func FilledCells(width int, ratio float64) int {
	if width <= 0 || !(ratio > 0) {
		return 0
	}
	n := int(math.Round(float64(width) * math.Min(ratio, 1)))
	if n > width {
		n = width
	}
	return n
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
