package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/space"
)

// Inspector is a window showing the live game state with controls to pause,
// reset and drive the session.
type Inspector[P space.Point[P]] struct {
	session *play.Session[P]
	score   *History
	lines   *History
}

func NewInspector[P space.Point[P]](session *play.Session[P], historyFrames int) *Inspector[P] {
	return &Inspector[P]{
		session: session,
		score:   NewHistory(historyFrames),
		lines:   NewHistory(historyFrames),
	}
}

// Render draws the window. It reads the game directly, so it must run on the
// session's scheduler goroutine, which is where System defers it.
func (in *Inspector[P]) Render() {
	g := in.session.Game()
	snap := g.Snapshot()
	in.score.Push(float32(snap.Score))
	in.lines.Push(float32(snap.Lines))

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 310), imgui.CondOnce)

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Variant: %s  Extent: %v", g.Geometry().Name(), g.Extent()))
	if snap.State == engine.GameOver {
		imgui.TextColored(imgui.NewVec4(1, 0.3, 0.3, 1), "GAME OVER")
	} else {
		imgui.Text(fmt.Sprintf("State: %s", snap.State))
	}
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Level: %d", snap.Score, snap.Lines, snap.Level))
	imgui.Text(fmt.Sprintf("Fall Interval: %v", snap.Interval))
	imgui.Text(fmt.Sprintf("Active: %s", describe(snap.Active)))
	imgui.Text(fmt.Sprintf("Held: %s", describe(snap.Held)))

	imgui.Separator()
	paused := in.session.Paused()
	if imgui.Checkbox("Paused", &paused) {
		in.session.SetPaused(paused)
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		in.session.Submit(play.Reset)
	}
	imgui.SameLine()
	if imgui.Button("Hard Drop") {
		in.session.Submit(play.HardDrop)
	}
	imgui.SameLine()
	if imgui.Button("Hold") {
		in.session.Submit(play.Hold)
	}

	if imgui.TreeNodeStr("Layer Fill") {
		perLayer := snap.Board.LayerSize()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("LayerFillTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Layer")
			imgui.TableSetupColumn("Fill")
			imgui.TableHeadersRow()

			for h, n := range snap.LayerFill {
				if n == 0 {
					continue
				}
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", h))
				imgui.TableNextColumn()
				imgui.ProgressBarV(float32(n)/float32(perLayer), imgui.NewVec2(-1, 0), fmt.Sprintf("%d/%d", n, perLayer))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Spawn Distribution") {
		spawned := g.Spawned()
		for _, kind := range space.Kinds {
			imgui.BulletText(fmt.Sprintf("%s: %d", kind, spawned[kind]))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Progress") {
		score := in.score.Values()
		lines := in.lines.Values()
		if implot.BeginPlotV("Score", imgui.NewVec2(-1, 150), 0) {
			implot.SetupAxesV("Frame", "Score", 0, implot.AxisFlagsAutoFit)
			implot.PlotLineFloatPtrInt("Score", &score[0], int32(len(score)))
			implot.EndPlot()
		}
		if implot.BeginPlotV("Lines", imgui.NewVec2(-1, 150), 0) {
			implot.SetupAxesV("Frame", "Lines", 0, implot.AxisFlagsAutoFit)
			implot.PlotLineFloatPtrInt("Lines", &lines[0], int32(len(lines)))
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func describe[P space.Point[P]](p *piece.Piece[P]) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%s at %v rot %v", p.Kind, p.Anchor, p.Rotation)
}
