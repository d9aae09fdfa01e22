// Package renderer drives the progressive tile loop: partitioning the
// image into row tiles, splitting each tile's samples across worker
// goroutines, merging their results, and flushing progress after every
// tile.
package renderer

import (
	"sync"

	"lumentrace/pkg/camera"
	"lumentrace/pkg/core"
	"lumentrace/pkg/integrator"
	"lumentrace/pkg/texture"
)

// Config holds the tunables for a progressive render.
type Config struct {
	AASamples int
	MaxDepth  int
	Threads   int
	ChunkSize int
}

// DefaultChunkSize is used when a Config leaves ChunkSize unset.
const DefaultChunkSize = 64

// Renderer ties together a scene, a camera, and a Config to produce a
// texture via RenderProgressive.
type Renderer struct {
	Scene      core.Shape
	Camera     *camera.Camera
	Background core.Color
	Config     Config
	Logger     core.Logger
}

// New builds a Renderer, defaulting ChunkSize when unset.
func New(scene core.Shape, cam *camera.Camera, background core.Color, config Config, logger core.Logger) *Renderer {
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultChunkSize
	}
	return &Renderer{Scene: scene, Camera: cam, Background: background, Config: config, Logger: logger}
}

// TileProgress describes one completed tile, passed to a
// RenderProgressive flush callback so it can report precise progress
// (a live viewer only needs the rows that just changed; a bitmap
// writer can ignore it and persist the whole image).
type TileProgress struct {
	Index, Total    int
	OffsetY, Height int
}

// RenderProgressive renders into img tile by tile, top to bottom,
// invoking flush after each tile completes so a caller can persist
// partial progress (e.g. to a bitmap file or a live viewer). sampler
// is the driver's PRNG, used only to seed each tile's per-job samplers
// so runs are reproducible given (seed, tile order, thread count).
func (r *Renderer) RenderProgressive(img *texture.Texture, sampler *core.Sampler, flush func(*texture.Texture, TileProgress) error) error {
	tiles := planTiles(img.Height(), r.Config.ChunkSize)

	imageHeight := img.Height()
	for i, t := range tiles {
		merged := r.renderTile(img.Width(), imageHeight, t, sampler)
		texture.Paste(img, merged, 0, t.offsetY)

		if flush != nil {
			progress := TileProgress{Index: i, Total: len(tiles), OffsetY: t.offsetY, Height: t.height}
			if err := flush(img, progress); err != nil {
				return err
			}
		}

		if r.Logger != nil {
			pct := (i + 1) * 100 / len(tiles)
			r.Logger.Printf("\rrender: %d%%", pct)
		}
	}
	if r.Logger != nil {
		r.Logger.Printf("\rrender: 100%%\n")
	}
	return nil
}

// renderTile splits t's samples across min(Threads, AASamples) jobs,
// runs them concurrently, and merges their private textures into one
// tile-sized result.
func (r *Renderer) renderTile(width, imageHeight int, t tile, sampler *core.Sampler) *texture.Texture {
	n := r.Config.Threads
	if r.Config.AASamples < n {
		n = r.Config.AASamples
	}
	if n < 1 {
		n = 1
	}

	if n <= 1 {
		return r.renderJob(width, imageHeight, t, r.Config.AASamples, core.NewSampler(nextJobSeed(sampler)))
	}

	samplesPerWorker := r.Config.AASamples / n
	mainSamples := samplesPerWorker + r.Config.AASamples%n
	numWorkers := n - 1

	workerResults := make([]*texture.Texture, numWorkers)
	seeds := make([]int64, numWorkers)
	for i := range seeds {
		seeds[i] = nextJobSeed(sampler)
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			workerResults[i] = r.renderJob(width, imageHeight, t, samplesPerWorker, core.NewSampler(seeds[i]))
		}(i)
	}

	main := r.renderJob(width, imageHeight, t, mainSamples, core.NewSampler(nextJobSeed(sampler)))
	wg.Wait()

	return mergeTiles(main, workerResults)
}

// nextJobSeed draws a 16-bit seed for one render job from the caller's
// PRNG.
func nextJobSeed(sampler *core.Sampler) int64 {
	return int64(sampler.IntRange(0, 0xFFFF))
}

// renderJob accumulates samplesForJob radiance samples per pixel into
// a fresh tile-sized texture, jittering each sample within the pixel.
// The v coordinate's denominator is the full image height, not the
// tile height, so tiles stitch into one continuous viewport.
func (r *Renderer) renderJob(width, imageHeight int, t tile, samplesForJob int, sampler *core.Sampler) *texture.Texture {
	out := texture.New(width, t.height)
	if samplesForJob <= 0 {
		return out
	}

	for ly := 0; ly < t.height; ly++ {
		for x := 0; x < width; x++ {
			sum := core.Black
			for s := 0; s < samplesForJob; s++ {
				u := (float64(x) + sampler.Float()) / float64(width-1)
				v := (float64(ly+t.offsetY) + sampler.Float()) / float64(imageHeight-1)
				ray := r.Camera.Ray(u, v, sampler)
				sum = sum.Add(integrator.Trace(ray, r.Scene, r.Background, r.Config.MaxDepth, sampler))
			}
			out.WritePixel(x, ly, core.Gamma2(sum, 1/float64(samplesForJob)))
		}
	}
	return out
}

// mergeTiles averages the main job's texture with every worker
// texture, uniformly: dst = (dst + sum(workers)) / (1 + #workers).
// This is exact only when AASamples is evenly divisible by the job
// count; otherwise the main job (which absorbed the remainder samples)
// is under-weighted relative to its sample count. The spec's own
// design notes flag this as a known accuracy wart, not something to
// redesign away.
func mergeTiles(main *texture.Texture, workers []*texture.Texture) *texture.Texture {
	out := texture.New(main.Width(), main.Height())
	n := float64(1 + len(workers))
	for y := 0; y < main.Height(); y++ {
		for x := 0; x < main.Width(); x++ {
			sum := main.ReadPixel(x, y)
			for _, w := range workers {
				sum = sum.Add(w.ReadPixel(x, y))
			}
			out.WritePixel(x, y, sum.Mul(1/n))
		}
	}
	return out
}
