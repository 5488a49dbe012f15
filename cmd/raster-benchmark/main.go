package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/parameter"
	"github.com/lixenwraith/bounce/render"
	"github.com/lixenwraith/bounce/terminal"
)

const sampleFrames = 10000

// mustSim builds the default scene; default parameters always validate
func mustSim() *engine.Sim {
	sim, err := engine.NewSim(parameter.Default())
	if err != nil {
		panic(err)
	}
	return sim
}

// === BENCHMARKS ===

func BenchmarkSimStep(b *testing.B) {
	sim := mustSim()
	dt := sim.Params().DT()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if sim.Step(dt).Exited {
			sim.Respawn()
		}
	}
}

func BenchmarkFrameEncode(b *testing.B) {
	sim := mustSim()
	var sink int

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scan := render.NewRowPairScanner(sim.Grid())
		for scan.Scan() {
			sink += len(scan.Bytes())
		}
	}
	_ = sink
}

func BenchmarkFrameWrite(b *testing.B) {
	sim := mustSim()
	session := terminal.NewSession(io.Discard)
	if err := session.Init(); err != nil {
		b.Fatal(err)
	}
	defer session.Fini()
	grid := sim.Grid()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scan := render.NewRowPairScanner(grid)
		for scan.Scan() {
			if err := session.WriteRow(scan.Bytes()); err != nil {
				b.Fatal(err)
			}
		}
		if err := session.EndFrame(grid.Height()/2, grid.Width()); err != nil {
			b.Fatal(err)
		}
	}
}

// === SCENE VERIFICATION ===

func verifyScene() {
	fmt.Println("=== Default Scene ===")
	fmt.Println()

	sim := mustSim()
	scan := render.NewRowPairScanner(sim.Grid())
	for scan.Scan() {
		fmt.Printf("|%s|\n", scan.Text())
	}
	fmt.Println()

	ball := sim.Ball()
	fmt.Printf("ball at (%.1f, %.1f) radius %.1f, ramp (%.0f, %.0f) to (%.0f, %.0f)\n",
		ball.Pos.X, ball.Pos.Y, ball.Radius,
		sim.Ramp().Start.X, sim.Ramp().Start.Y, sim.Ramp().End.X, sim.Ramp().End.Y)
}

func main() {
	fmt.Println("bounce raster pipeline benchmark")
	fmt.Println("================================")
	fmt.Println()

	verifyScene()

	fmt.Println()
	fmt.Println("=== Running Benchmarks ===")
	fmt.Println("Run with: go test -bench=. -benchmem ./render/")
	fmt.Println()

	// Quick inline benchmark for immediate results
	iterations := sampleFrames

	sim := mustSim()
	dt := sim.Params().DT()
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if sim.Step(dt).Exited {
			sim.Respawn()
		}
	}
	stepTime := time.Since(start)

	var sink int
	start = time.Now()
	for i := 0; i < iterations; i++ {
		scan := render.NewRowPairScanner(sim.Grid())
		for scan.Scan() {
			sink += len(scan.Bytes())
		}
	}
	encodeTime := time.Since(start)
	_ = sink

	// Full pipeline through the real loop: the mock time source makes
	// every sleep instantaneous, so this measures pure throughput
	session := terminal.NewSession(io.Discard)
	if err := session.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize session: %v\n", err)
		os.Exit(1)
	}

	runner := engine.NewRunner(mustSim(), session, engine.NewMockTimeProvider(time.Now()))
	runner.MaxFrames = uint64(iterations)

	start = time.Now()
	if err := runner.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Benchmark loop failed: %v\n", err)
		os.Exit(1)
	}
	fullTime := time.Since(start)
	session.Fini()

	perFrame := func(d time.Duration) float64 {
		return float64(d.Nanoseconds()) / float64(iterations)
	}

	fmt.Printf("Quick benchmark (%d frames):\n", iterations)
	fmt.Printf("  Physics step:    %v (%.0f ns/frame)\n", stepTime, perFrame(stepTime))
	fmt.Printf("  Row-pair encode: %v (%.0f ns/frame)\n", encodeTime, perFrame(encodeTime))
	fmt.Printf("  Full pipeline:   %v (%.0f frames/sec)\n", fullTime, float64(iterations)/fullTime.Seconds())

	stats := runner.Stats()
	fmt.Printf("  Loop counters:   frames=%d bounces=%d respawns=%d\n", stats.Frames, stats.Bounces, stats.Respawns)
}
