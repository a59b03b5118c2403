package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// PerformanceStats is a window showing frame times and per-system timings.
type PerformanceStats struct {
	scheduler *loop.Scheduler
	frames    *History
	timer     *FrameTimer
}

func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		frames:    NewHistory(historyFrames),
		timer:     NewFrameTimer(),
	}
}

func (ps *PerformanceStats) Render() {
	ps.frames.Push(float32(ps.timer.Delta().Seconds() * 1000.0))

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 330), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()

	avgFrameTime := ps.frames.Avg()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	values := ps.frames.Values()
	imgui.PlotLinesFloatPtr("##frametime", &values[0], int32(len(values)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg (ms)")
			imgui.TableSetupColumn("Min (ms)")
			imgui.TableSetupColumn("Max (ms)")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(millis(sys.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(millis(sys.MinDuration))
				imgui.TableNextColumn()
				imgui.Text(millis(sys.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
}

// FrameTimer measures wall time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// Delta returns the time since the previous call, or since creation.
func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
