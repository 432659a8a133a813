package core

import "sync"

// Number of frame samples folded into the rolling average.
const avgCount uint8 = 30

type MetricsState struct {
	frameAVGCounter    uint8
	msTimes            [avgCount]float64
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

var onceMetrics sync.Once
var metricsState *MetricsState = nil

func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metricsState = &MetricsState{}
	})
	return nil
}

// MetricsUpdate folds one frame's elapsed time (seconds) into the rolling
// frame-time average and the frames-per-second counter.
func MetricsUpdate(frameElapsedTime float64) {
	if metricsState == nil {
		return
	}

	frameMS := frameElapsedTime * 1000.0
	metricsState.msTimes[metricsState.frameAVGCounter] = frameMS
	if metricsState.frameAVGCounter == avgCount-1 {
		sum := 0.0
		for i := uint8(0); i < avgCount; i++ {
			sum += metricsState.msTimes[i]
		}
		metricsState.msAvg = sum / float64(avgCount)
	}
	metricsState.frameAVGCounter++
	metricsState.frameAVGCounter %= avgCount

	metricsState.accumulatedFrameMS += frameMS
	if metricsState.accumulatedFrameMS > 1000 {
		metricsState.fps = float64(metricsState.frames)
		metricsState.accumulatedFrameMS -= 1000
		metricsState.frames = 0
	}

	metricsState.frames++
}

func MetricsFPS() float64 {
	return metricsState.fps
}

func MetricsFrameTime() float64 {
	return metricsState.msAvg
}

func MetricsFrame() (float64, float64) {
	return metricsState.fps, metricsState.msAvg
}
