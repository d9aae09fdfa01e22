// Command lumentrace renders a scene to an uncompressed bitmap.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"lumentrace/pkg/bitmap"
	"lumentrace/pkg/core"
	"lumentrace/pkg/liveprogress"
	"lumentrace/pkg/renderer"
	"lumentrace/pkg/sceneconfig"
	"lumentrace/pkg/texture"
)

type stdoutLogger struct{}

func (stdoutLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

func main() {
	scene := flag.String("scene", "cornell", "built-in scene name (cornell, showcase, spheregrid) or path to a .yaml scene file")
	out := flag.String("out", "tex.bmp", "output bitmap path")
	width := flag.Int("width", 720, "output image width")
	height := flag.Int("height", 720, "output image height")
	samples := flag.Int("samples", 2000, "antialiasing samples per pixel")
	depth := flag.Int("depth", 20, "maximum bounce depth")
	threads := flag.Int("threads", 4, "worker goroutines per tile")
	chunk := flag.Int("chunk", renderer.DefaultChunkSize, "tile height in pixels")
	seed := flag.Int64("seed", 1018, "PRNG seed for scene generation and sampling")
	live := flag.Bool("live", false, "serve a live-progress websocket while rendering")
	liveAddr := flag.String("live-addr", ":8080", "address for the live-progress server when -live is set")
	flag.Parse()

	if err := run(*scene, *out, *width, *height, *samples, *depth, *threads, *chunk, *seed, *live, *liveAddr); err != nil {
		fmt.Fprintln(os.Stderr, "lumentrace:", err)
		os.Exit(1)
	}
}

func run(sceneName, out string, width, height, samples, depth, threads, chunk int, seed int64, live bool, liveAddr string) error {
	sampler := core.NewSampler(seed)
	aspect := float64(width) / float64(height)

	built, err := loadScene(sceneName, sampler, aspect)
	if err != nil {
		return fmt.Errorf("load scene %q: %w", sceneName, err)
	}

	img := texture.New(width, height)
	if !bitmap.Write(out, img) {
		return fmt.Errorf("write initial bitmap %q", out)
	}

	config := renderer.Config{AASamples: samples, MaxDepth: depth, Threads: threads, ChunkSize: chunk}
	r := renderer.New(built.World, built.Camera, built.Background, config, stdoutLogger{})

	var broadcaster *liveprogress.Broadcaster
	if live {
		broadcaster = liveprogress.NewBroadcaster()
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", broadcaster.HandleWS)
		server := &http.Server{Addr: liveAddr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("lumentrace: live-progress server stopped: %v", err)
			}
		}()
		fmt.Printf("live progress at ws://%s/ws\n", liveAddr)
	}

	flush := func(tex *texture.Texture, progress renderer.TileProgress) error {
		if broadcaster != nil {
			broadcaster.FlushTile(tex, progress.Index, progress.Total, progress.OffsetY, progress.Height)
		}
		if !bitmap.Write(out, tex) {
			return fmt.Errorf("flush bitmap %q", out)
		}
		return nil
	}

	return r.RenderProgressive(img, sampler, flush)
}

// loadScene dispatches on sceneName: a recognized built-in name uses
// the corresponding Go scene builder, anything ending in .yaml or
// .yml is parsed as a declarative scene description.
func loadScene(sceneName string, sampler *core.Sampler, aspect float64) (*sceneconfig.Scene, error) {
	switch sceneName {
	case "cornell":
		return sceneconfig.CornellScene(sampler)
	case "showcase":
		return sceneconfig.ShowcaseScene(sampler, aspect)
	case "spheregrid":
		return sceneconfig.SphereGridScene(sampler, aspect)
	}

	if strings.HasSuffix(sceneName, ".yaml") || strings.HasSuffix(sceneName, ".yml") {
		desc, err := sceneconfig.LoadYAML(sceneName)
		if err != nil {
			return nil, err
		}
		return desc.Build(sampler, aspect)
	}

	return nil, fmt.Errorf("unknown scene %q (want cornell, showcase, spheregrid, or a .yaml path)", sceneName)
}
