package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"forest-ca/internal/app"
	"forest-ca/internal/core"
	_ "forest-ca/internal/sims/forest"

	"github.com/gdamore/tcell/v2"
)

type igniter interface {
	Ignite(x, y int)
}

type paletteProvider interface {
	Palette() []color.RGBA
}

type fireStatsProvider interface {
	StepCount() int
	BurningCount() int
	ActiveClusterCount() int
	TrackedClusterCount() int
}

var statusStyle = tcell.StyleDefault.
	Foreground(tcell.ColorWhite).
	Background(tcell.ColorDarkBlue)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	run(screen, sim, cfg)
}

func run(screen tcell.Screen, sim core.Sim, cfg *app.Config) {
	styles := cellStyles(sim)
	tps := cfg.TPS
	timer := core.NewFixedStep(tps)
	paused := false

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					sim.Step()
				case ev.Rune() == 'r':
					sim.Reset(cfg.Seed)
				case ev.Rune() == 's':
					sim.Reset(time.Now().UnixNano())
				case ev.Rune() == '+' || ev.Rune() == '=':
					tps = clampTPS(tps * 2)
					timer.SetTPS(tps)
				case ev.Rune() == '-':
					tps = clampTPS(tps / 2)
					timer.SetTPS(tps)
				}
			case *tcell.EventMouse:
				if ev.Buttons()&tcell.Button1 != 0 {
					if target, ok := sim.(igniter); ok {
						x, y := ev.Position()
						// Row 0 is the status line.
						target.Ignite(x, y-1)
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			draw(screen, sim, styles, tps, paused)

		case <-ticker.C:
			if !paused && timer.ShouldStep() {
				sim.Step()
			}
			draw(screen, sim, styles, tps, paused)
		}
	}
}

// cellStyles turns the simulation's palette into per-cell-value terminal
// styles, falling back to a grayscale pair when no palette is exposed.
func cellStyles(sim core.Sim) []tcell.Style {
	provider, ok := sim.(paletteProvider)
	if !ok {
		return []tcell.Style{
			tcell.StyleDefault.Background(tcell.ColorBlack),
			tcell.StyleDefault.Background(tcell.ColorWhite),
		}
	}
	palette := provider.Palette()
	styles := make([]tcell.Style, len(palette))
	for i, col := range palette {
		styles[i] = tcell.StyleDefault.Background(
			tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
	}
	return styles
}

func draw(screen tcell.Screen, sim core.Sim, styles []tcell.Style, tps int, paused bool) {
	screen.Clear()

	sw, sh := screen.Size()
	drawStatus(screen, sim, sw, tps, paused)

	size := sim.Size()
	cells := sim.Cells()
	maxY := size.H
	if maxY > sh-1 {
		maxY = sh - 1
	}
	maxX := size.W
	if maxX > sw {
		maxX = sw
	}
	for y := 0; y < maxY; y++ {
		row := y * size.W
		for x := 0; x < maxX; x++ {
			idx := int(cells[row+x])
			if idx >= len(styles) {
				idx = len(styles) - 1
			}
			screen.SetContent(x, y+1, ' ', nil, styles[idx])
		}
	}

	screen.Show()
}

func drawStatus(screen tcell.Screen, sim core.Sim, width, tps int, paused bool) {
	state := "running"
	if paused {
		state = "paused"
	}
	status := fmt.Sprintf(" %s | tps %d %s", sim.Name(), tps, state)
	if stats, ok := sim.(fireStatsProvider); ok {
		status += fmt.Sprintf(" | step %d | burning %d | fires %d/%d",
			stats.StepCount(), stats.BurningCount(),
			stats.ActiveClusterCount(), stats.TrackedClusterCount())
	}
	status += " | click ignite, space pause, n step, r/s reset, +/- speed, q quit"

	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(status) {
			ch = rune(status[x])
		}
		screen.SetContent(x, 0, ch, nil, statusStyle)
	}
}

func clampTPS(tps int) int {
	if tps < 1 {
		return 1
	}
	if tps > 240 {
		return 240
	}
	return tps
}
