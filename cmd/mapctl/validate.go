package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"prepmap/config"
	"prepmap/internal/infra/geometry"

	"github.com/pkg/errors"
)

type validateOptions struct {
	bucket  string
	key     string
	regions string
}

func runValidate(ctx context.Context, w io.Writer, opts validateOptions) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if opts.bucket != "" {
		cfg.Map.Geometry.BucketURL = opts.bucket
	}
	if opts.key != "" {
		cfg.Map.Geometry.Key = opts.key
	}
	if opts.regions != "" {
		cfg.Map.RegionsFile = opts.regions
	}

	fmt.Fprintf(w, "Validating geometry %s/%s\n", cfg.Map.Geometry.BucketURL, cfg.Map.Geometry.Key)

	loader, err := geometry.New(geometry.Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		return err
	}
	g, err := loader.Graph(ctx)
	if err != nil {
		return errors.Wrap(err, "geometry failed to load")
	}

	return report(w, g.Index().All())
}
