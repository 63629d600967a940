package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tileview/viewport"
	"github.com/rs/zerolog/log"
)

// settleDelay is how long a newly created file must stay quiet before it
// is decoded.
const settleDelay = 150 * time.Millisecond

type loadResult struct {
	img    image.Image
	source string
	err    error
}

// Loader loads the tileset once, off the dispatch goroutine, and
// publishes it from Poll. It implements viewport.ImageSource.
type Loader struct {
	path string

	ready   []func()
	img     viewport.Image
	results chan loadResult
	started bool
	done    bool

	// convert turns the decoded image into a drawable one. It runs on the
	// dispatch goroutine.
	convert func(image.Image) viewport.Image
}

var _ viewport.ImageSource = (*Loader)(nil)

// NewLoader creates a loader for path. An empty path selects the
// embedded DefaultTileset.
func NewLoader(path string) *Loader {
	return &Loader{
		path:    path,
		results: make(chan loadResult, 1),
		convert: func(img image.Image) viewport.Image {
			return ebiten.NewImageFromImage(img)
		},
	}
}

func (l *Loader) OnReady(fn func()) { l.ready = append(l.ready, fn) }

// Image returns the loaded tileset, or nil before it is ready.
func (l *Loader) Image() viewport.Image {
	if l.img == nil {
		return nil
	}
	return l.img
}

// Start begins loading. Calling it more than once has no effect.
func (l *Loader) Start(ctx context.Context) {
	if l.started {
		return
	}
	l.started = true
	go func() {
		res := l.fetch(ctx)
		select {
		case l.results <- res:
		case <-ctx.Done():
		}
	}()
}

// Poll publishes a finished load and fires the ready handlers. It must be
// called from the dispatch goroutine; handlers fire at most once over the
// loader's lifetime and never when the load failed.
func (l *Loader) Poll() {
	if l.done {
		return
	}
	select {
	case res := <-l.results:
		l.done = true
		if res.err != nil {
			log.Error().Err(res.err).Str("source", res.source).Msg("tileset load failed")
			return
		}
		l.img = l.convert(res.img)
		b := res.img.Bounds()
		log.Info().Str("source", res.source).Int("width", b.Dx()).Int("height", b.Dy()).Msg("tileset loaded")
		for _, fn := range l.ready {
			fn()
		}
	default:
	}
}

func (l *Loader) fetch(ctx context.Context) loadResult {
	if l.path == "" {
		img, err := decodeEmbedded(DefaultTileset)
		return loadResult{img: img, source: "embedded:" + DefaultTileset, err: err}
	}

	img, err := decodeFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", l.path).Msg("tileset not found, waiting for it to appear")
		img, err = waitForFile(ctx, l.path)
	}
	return loadResult{img: img, source: l.path, err: err}
}

// waitForFile watches the directory of path until the file exists and
// decodes cleanly, or ctx is done.
func waitForFile(ctx context.Context, path string) (image.Image, error) {
	target := filepath.Clean(path)
	w, err := NewWatcher(func(name string) bool { return name == target }, filepath.Dir(target))
	if err != nil {
		return nil, fmt.Errorf("assets: watch %s: %w", filepath.Dir(target), err)
	}
	defer w.Close()

	// The file may have appeared before the watch was armed.
	if _, err := os.Stat(target); err == nil {
		if img, err := decodeFile(target); err == nil {
			return img, nil
		}
	}

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case _, ok := <-w.Events:
			if !ok {
				return nil, fmt.Errorf("assets: watcher for %s closed", target)
			}
			settle.Reset(settleDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil, fmt.Errorf("assets: watcher for %s closed", target)
			}
			return nil, fmt.Errorf("assets: watch %s: %w", target, err)
		case <-settle.C:
			img, err := decodeFile(target)
			if err == nil {
				return img, nil
			}
			log.Debug().Err(err).Str("path", target).Msg("tileset not decodable yet")
		}
	}
}
