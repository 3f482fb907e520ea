// Stress test for concurrent octree mutation throughput and query latency
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spatial3d/internal/spatial"
)

const worldExtent = 128

// stressItem guards its bounds with a mutex: producers rewrite them from
// their own goroutines while the tick goroutine reads them inside Swap, so
// the field needs a consistent Min/Max snapshot across that boundary.
type stressItem struct {
	spatial.TreeItem
	mu     sync.Mutex
	bounds spatial.Region
}

func (s *stressItem) Bounds() spatial.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bounds
}

func (s *stressItem) moveTo(center rl.Vector3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	half := rl.Vector3Scale(s.bounds.Size(), 0.5)
	s.bounds = spatial.NewRegion(
		rl.Vector3Subtract(center, half),
		rl.Vector3Add(center, half),
	)
}

func main() {
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address (e.g. :9090)")
	producers := flag.Int("producers", 8, "concurrent mutation producers")
	ticks := flag.Int("ticks", 200, "swap ticks per run")
	flag.Parse()

	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			log.Printf("metrics on %s/metrics", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	testCounts := []int{100, 500, 1000, 2000, 5000, 10000, 20000}

	for _, count := range testCounts {
		runStress(count, *producers, *ticks)
	}
}

// splitItems partitions items into at most producers non-empty slices; the
// last share takes the division remainder so every item gets a producer.
func splitItems(items []*stressItem, producers int) [][]*stressItem {
	if len(items) == 0 {
		return nil
	}
	if producers > len(items) {
		producers = len(items)
	}
	if producers < 1 {
		producers = 1
	}
	per := len(items) / producers
	shares := make([][]*stressItem, 0, producers)
	for p := 0; p < producers; p++ {
		lo := p * per
		hi := lo + per
		if p == producers-1 {
			hi = len(items)
		}
		shares = append(shares, items[lo:hi])
	}
	return shares
}

func randomCenter(rng *rand.Rand) rl.Vector3 {
	return rl.Vector3{
		X: rng.Float32()*worldExtent*1.8 - worldExtent*0.9,
		Y: rng.Float32()*worldExtent*1.8 - worldExtent*0.9,
		Z: rng.Float32()*worldExtent*1.8 - worldExtent*0.9,
	}
}

func runStress(count, producers, ticks int) {
	world := spatial.NewRegion(
		rl.Vector3{X: -worldExtent, Y: -worldExtent, Z: -worldExtent},
		rl.Vector3{X: worldExtent, Y: worldExtent, Z: worldExtent},
	)
	tree := spatial.NewOctree(world, spatial.DefaultMaxDepth)

	rng := rand.New(rand.NewSource(42)) // consistent results
	items := make([]*stressItem, count)
	for i := range items {
		size := 0.5 + rng.Float32()*1.5
		it := &stressItem{}
		it.bounds = spatial.NewRegionFromCenter(randomCenter(rng), rl.Vector3{X: size, Y: size, Z: size})
		items[i] = it
		tree.Add(it)
	}
	tree.Swap()

	// Producers hammer Move/Remove/Add while the main goroutine ticks.
	var ops int64
	var wg sync.WaitGroup
	done := make(chan struct{})

	shares := splitItems(items, producers)
	for p, share := range shares {
		wg.Add(1)
		go func(p int, mine []*stressItem) {
			defer wg.Done()
			prng := rand.New(rand.NewSource(int64(p)))
			n := int64(0)
			for {
				select {
				case <-done:
					atomic.AddInt64(&ops, n)
					return
				default:
				}
				it := mine[prng.Intn(len(mine))]
				switch prng.Intn(10) {
				case 0:
					tree.Remove(it)
				case 1:
					tree.Add(it)
				default:
					it.moveTo(randomCenter(prng))
					tree.Move(it)
				}
				n++
			}
		}(p, share)
	}

	swapStart := time.Now()
	for i := 0; i < ticks; i++ {
		tree.Swap()
	}
	swapTime := time.Since(swapStart) / time.Duration(ticks)

	close(done)
	wg.Wait()
	tree.Swap() // drain what the producers left behind

	elapsed := time.Since(swapStart)
	opsPerSec := float64(ops) / elapsed.Seconds()

	// Frustum culling query over the settled tree
	camera := rl.Camera3D{
		Position:   rl.Vector3{X: worldExtent, Y: worldExtent / 2, Z: worldExtent},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	frustum := spatial.FrustumFromCamera(camera, 16.0/9.0, 0.1, 400)
	vol := spatial.FrustumVolume(frustum)

	cullStart := time.Now()
	const cullIterations = 50
	var visible int
	for i := 0; i < cullIterations; i++ {
		visible = 0
		tree.CollectVisible(vol, true, func(spatial.Item) { visible++ }, nil)
	}
	cullTime := time.Since(cullStart) / cullIterations

	fmt.Printf("%6d objects: swap %8v | %9.0f ops/s | cull %8v (%5d visible) | %5d nodes\n",
		count, swapTime.Round(time.Microsecond), opsPerSec,
		cullTime.Round(time.Microsecond), visible, tree.NodeCount())
}
