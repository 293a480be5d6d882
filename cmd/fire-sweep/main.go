package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"forest-ca/internal/sims/forest"
)

type paramSet struct {
	pTree float64
	pFire float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("p_tree=%g p_fire=%g", p.pTree, p.pFire)
}

type scenarioResult struct {
	params paramSet

	completedFires int
	totalFires     int
	meanMaxSize    float64
	medianMaxSize  int
	largestMaxSize int
	peakBurning    int
	finalTrees     int
}

func main() {
	steps := flag.Int("steps", 2000, "ticks to simulate per scenario")
	size := flag.Int("size", 128, "grid side length")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	pTreeOptions := []float64{0.0005, 0.001, 0.002, 0.004}
	pFireOptions := []float64{0.000005, 0.00001, 0.00005, 0.0001}

	var sets []paramSet
	for _, pTree := range pTreeOptions {
		for _, pFire := range pFireOptions {
			sets = append(sets, paramSet{pTree: pTree, pFire: pFire})
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %dx%d grid)\n",
		len(sets), *workers, *steps, *size, *size)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *size, *steps, *seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].meanMaxSize != all[j].meanMaxSize {
			return all[i].meanMaxSize > all[j].meanMaxSize
		}
		return all[i].completedFires > all[j].completedFires
	})
	elapsed := time.Since(start)

	fmt.Printf("\nCompleted-fire size distribution per parameter set (elapsed %s):\n",
		elapsed.Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) fires=%d/%d meanMax=%.1f medianMax=%d largestMax=%d peakBurning=%d trees=%d %s\n",
			i+1, res.completedFires, res.totalFires, res.meanMaxSize, res.medianMaxSize,
			res.largestMaxSize, res.peakBurning, res.finalTrees, res.params)
	}
}

func runScenario(params paramSet, size, steps int, seed int64) scenarioResult {
	cfg := forest.DefaultConfig()
	cfg.Size = size
	cfg.Seed = seed
	cfg.PTree = params.pTree
	cfg.PFire = params.pFire
	// Keep every fire in the registry for the whole run so the final report
	// sees all completed lifecycles.
	cfg.Window = steps + 1

	world, err := forest.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("scenario %s: %v", params, err)
	}

	peakBurning := 0
	for i := 0; i < steps; i++ {
		world.Step()
		if burning := world.BurningCount(); burning > peakBurning {
			peakBurning = burning
		}
	}

	res := scenarioResult{
		params:      params,
		peakBurning: peakBurning,
	}

	var maxSizes []int
	for _, c := range world.Clusters() {
		res.totalFires++
		if c.Alive() {
			continue
		}
		maxSizes = append(maxSizes, c.MaxSize)
	}
	res.completedFires = len(maxSizes)
	if len(maxSizes) > 0 {
		sort.Ints(maxSizes)
		sum := 0
		for _, v := range maxSizes {
			sum += v
		}
		res.meanMaxSize = float64(sum) / float64(len(maxSizes))
		res.medianMaxSize = maxSizes[len(maxSizes)/2]
		res.largestMaxSize = maxSizes[len(maxSizes)-1]
	}

	for _, cell := range world.Grid() {
		if cell == forest.CellTree {
			res.finalTrees++
		}
	}
	return res
}
