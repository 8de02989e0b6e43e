// Command bss2png extracts every frame of a BSS background archive as PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cocosip/go-bss-codec/bs"
	"github.com/cocosip/go-bss-codec/bss"
)

type config struct {
	in      string
	out     string
	width   int
	height  int
	chunk   int
	workers int
	fast    bool
	verbose bool
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("bss2png", flag.ContinueOnError)
	fs.StringVar(&cfg.in, "in", "", "input BSS archive (raw, zstd or lz4)")
	fs.StringVar(&cfg.out, "out", ".", "output directory")
	fs.IntVar(&cfg.width, "width", 320, "frame width in pixels")
	fs.IntVar(&cfg.height, "height", 240, "frame height in pixels")
	fs.IntVar(&cfg.chunk, "chunk", 0, "chunk size in bytes (0 = detect)")
	fs.IntVar(&cfg.workers, "workers", 0, "concurrent decodes (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.fast, "fast", false, "use the fixed-point IDCT")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.in == "" {
		return nil, errors.New("-in is required")
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if !verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zc.Build()
}

func run(ctx context.Context, cfg *config, log *zap.Logger) error {
	data, err := bss.LoadFile(cfg.in)
	if err != nil {
		return errors.Wrapf(err, "load %s", cfg.in)
	}
	chunks, err := bss.Split(data, cfg.chunk)
	if err != nil {
		return err
	}
	log.Info("archive loaded",
		zap.String("path", cfg.in),
		zap.Int("bytes", len(data)),
		zap.Int("frames", len(chunks)))

	opts := &bs.Options{IDCT: bs.IDCTFloat}
	if cfg.fast {
		opts.IDCT = bs.IDCTFast
	}
	results, err := bss.DecodeAll(ctx, chunks, cfg.width, cfg.height, bss.BatchOptions{
		Workers: cfg.workers,
		Decode:  opts,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(cfg.in), filepath.Ext(cfg.in))

	written := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		name := filepath.Join(cfg.out, fmt.Sprintf("%s_%03d.png", base, r.Index))
		if err := writePNG(name, r.Frame); err != nil {
			return err
		}
		log.Debug("frame written", zap.Int("frame", r.Index), zap.String("file", name))
		written++
	}
	log.Info("done", zap.Int("written", written), zap.Int("skipped", len(results)-written))
	return nil
}

func writePNG(name string, pb *bs.PixelBuffer) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, pb.Image()); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", name)
	}
	return f.Close()
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	log, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("bss2png failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}
