package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 30 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
	}, nil
}

// CaptureProfile starts a background capture tagged with reason.
// It refuses while a capture is running or during the cooldown.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since.Round(time.Second))
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				log.Printf("Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("Error capturing trace: %v", err)
			}
		}()
		wg.Wait()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		log.Printf("Profile %s done: HeapAlloc=%d KB NumGC=%d; inspect with: go tool pprof -http=:8080 %s",
			baseName, m.HeapAlloc/1024, m.NumGC, filepath.Join(p.profilesDir, baseName+".cpu.prof"))
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()
	return nil
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// fpsMonitor averages the frame rate over a window and flags sustained drops.
// Drops during the warm-up period after start are ignored.
type fpsMonitor struct {
	window    time.Duration
	threshold float64
	warmup    time.Duration

	elapsed time.Duration
	frames  int
	running time.Duration
	fps     float64
}

func newFPSMonitor() *fpsMonitor {
	return &fpsMonitor{
		window:    500 * time.Millisecond,
		threshold: 45,
		warmup:    3 * time.Second,
		fps:       60,
	}
}

// observe records one frame. It returns true when a window closes below the threshold.
func (m *fpsMonitor) observe(delta time.Duration) bool {
	m.running += delta
	m.elapsed += delta
	m.frames++
	if m.elapsed < m.window {
		return false
	}
	m.fps = float64(m.frames) / m.elapsed.Seconds()
	m.frames = 0
	m.elapsed = 0
	return m.fps < m.threshold && m.running >= m.warmup
}

// FPS returns the last measured frame rate
func (m *fpsMonitor) FPS() float64 {
	return m.fps
}
