package bss

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cocosip/go-bss-codec/bs"
)

// BatchOptions configures DecodeAll.
type BatchOptions struct {
	// Workers bounds concurrent decodes; 0 uses GOMAXPROCS.
	Workers int
	// Decode is passed to every frame decode; nil selects defaults.
	Decode *bs.Options
	// Logger receives per-frame diagnostics; nil disables logging.
	Logger *zap.Logger
}

// Result is the outcome of decoding one chunk.
type Result struct {
	Index int
	Frame *bs.PixelBuffer
	Err   error
}

// DecodeAll decodes every chunk as a width x height frame. Frames decode
// independently; a frame that fails carries its error in its Result and
// does not stop the others. The returned error is non-nil only when ctx is
// cancelled or every frame failed.
func DecodeAll(ctx context.Context, chunks [][]byte, width, height int, opts BatchOptions) ([]Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if len(chunks) == 0 {
		return nil, ErrNoFrames
	}

	results := make([]Result, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	log.Debug("decoding chunks",
		zap.Int("chunks", len(chunks)),
		zap.Int("workers", workers),
		zap.Int("width", width),
		zap.Int("height", height))

	for i, chunk := range chunks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pb, err := bs.DecodeWithOptions(chunk, width, height, opts.Decode)
			results[i] = Result{Index: i, Frame: pb, Err: err}
			if err != nil {
				log.Warn("frame decode failed", zap.Int("frame", i), zap.Error(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	decoded := 0
	for i := range results {
		results[i].Index = i
		if results[i].Err == nil {
			decoded++
		}
	}
	log.Debug("decode finished", zap.Int("decoded", decoded), zap.Int("failed", len(results)-decoded))
	if decoded == 0 {
		return results, ErrNoFrames
	}
	return results, nil
}
