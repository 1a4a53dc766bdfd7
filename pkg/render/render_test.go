package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-shooting-gallery/internal/component"
	"go-shooting-gallery/internal/entity"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestWorldToScreen(t *testing.T) {
	x, y := WorldToScreen(0, 0, 800, 600)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)

	x, y = WorldToScreen(-400, 300, 800, 600)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y, "positive world Y is up")
}

func TestCollect_OrdersByDepth(t *testing.T) {
	ecs := entity.NewECS()
	bullet := ecs.NewEntity()
	ecs.Positions[bullet] = &component.Position{X: 0, Y: 0, Z: 1}
	ecs.Renderables[bullet] = &component.Renderable{Color: blue, Width: 10, Height: 10}
	ship := ecs.NewEntity()
	ecs.Positions[ship] = &component.Position{X: 100, Y: -100}
	ecs.Renderables[ship] = &component.Renderable{Color: red, Width: 20, Height: 20}
	hidden := ecs.NewEntity()
	ecs.Positions[hidden] = &component.Position{}

	sprites := Collect(ecs, 800, 600)
	require.Len(t, sprites, 2)
	assert.Equal(t, Sprite{X: 490, Y: 390, Width: 20, Height: 20, Color: red}, sprites[0])
	assert.Equal(t, Sprite{X: 395, Y: 295, Width: 10, Height: 10, Z: 1, Color: blue}, sprites[1])
}

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 50, 0, 200}, DarkenColor(color.RGBA{200, 100, 0, 200}))
}

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func background(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestTerminalRenderer_ScalesField(t *testing.T) {
	s := newScreen(t, 80, 24)
	r := NewTerminalRenderer(s, Palette{Background: color.RGBA{0, 0, 0, 255}, Text: color.RGBA{255, 255, 255, 255}})
	r.Clear()

	// 800x240 field: 10 units per column, 10 per row.
	r.Draw([]Sprite{{X: 100, Y: 50, Width: 20, Height: 10, Color: red}}, 800, 240)

	assert.Equal(t, CellColor(red), background(s, 10, 5))
	assert.Equal(t, CellColor(red), background(s, 11, 5))
	assert.NotEqual(t, CellColor(red), background(s, 12, 5))
	assert.NotEqual(t, CellColor(red), background(s, 10, 6))
}

func TestTerminalRenderer_TinySpriteStillVisible(t *testing.T) {
	s := newScreen(t, 80, 24)
	r := NewTerminalRenderer(s, Palette{})
	r.Draw([]Sprite{{X: 401, Y: 121, Width: 1, Height: 1, Color: blue}}, 800, 240)
	assert.Equal(t, CellColor(blue), background(s, 40, 12))
}

func TestTerminalRenderer_ClipsOffscreen(t *testing.T) {
	s := newScreen(t, 10, 10)
	r := NewTerminalRenderer(s, Palette{})
	assert.NotPanics(t, func() {
		r.Draw([]Sprite{{X: -50, Y: -50, Width: 1000, Height: 1000, Color: red}}, 100, 100)
	})
	assert.Equal(t, CellColor(red), background(s, 9, 9))
}

func TestTerminalRenderer_TextCentered(t *testing.T) {
	s := newScreen(t, 20, 3)
	r := NewTerminalRenderer(s, Palette{})
	r.TextCentered(1, "abcd")
	ch, _, _, _ := s.GetContent(8, 1)
	assert.Equal(t, 'a', ch)
	ch, _, _, _ = s.GetContent(11, 1)
	assert.Equal(t, 'd', ch)
}

func TestRoundLabel(t *testing.T) {
	for n, want := range map[int]string{0: "", -3: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"} {
		assert.Equal(t, want, RoundLabel(n), "round %d", n)
	}
}
