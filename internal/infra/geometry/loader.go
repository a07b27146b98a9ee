// Package geometry loads the map geometry source and the region identity table.
package geometry

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"prepmap/config"
	"prepmap/internal/errors"
	"prepmap/internal/infra/metrics"
	"prepmap/internal/mapcore/region"
	"prepmap/internal/mapcore/scene"
	"prepmap/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	// URL schemes accepted for map.geometry.bucketUrl
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params holds dependencies for the geometry loader
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Collector `optional:"true"`
}

// Loader fetches the geometry source once and builds the scene graph from it.
// The first outcome, success or failure, is kept for the life of the process.
type Loader struct {
	bucketURL string
	key       string
	width     float64
	height    float64
	table     region.IdentityTable
	logger    *slog.Logger
	metrics   *metrics.Collector

	once     sync.Once
	graph    *scene.Graph
	err      error
	checksum string
	size     int64
}

// New reads the identity table eagerly, so that a broken table stops startup.
// The geometry itself is fetched on first use.
func New(params Params) (*Loader, error) {
	cfg := params.Config.Map

	regionsPath, err := params.Config.RegionsPath()
	if err != nil {
		return nil, err
	}
	table, err := LoadIdentityTable(regionsPath)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Region identity table loaded",
		slog.String("path", regionsPath),
		slog.Int("keyed", len(table.Keyed)),
		slog.Int("ordinal", len(table.Ordinal)),
	)

	return &Loader{
		bucketURL: cfg.Geometry.BucketURL,
		key:       cfg.Geometry.Key,
		width:     cfg.Width,
		height:    cfg.Height,
		table:     table,
		logger:    params.Logger,
		metrics:   params.Metrics,
	}, nil
}

// LoadIdentityTable reads a region identity table YAML file.
func LoadIdentityTable(path string) (region.IdentityTable, error) {
	table, err := config.LoadFile[region.IdentityTable](path)
	if err != nil {
		return region.IdentityTable{}, errors.Wrap(err, "load region identity table")
	}
	if len(table.Keyed) == 0 && len(table.Ordinal) == 0 {
		return region.IdentityTable{}, errors.Errorf("region identity table %s is empty", path)
	}
	if err := table.Validate(); err != nil {
		return region.IdentityTable{}, errors.Wrapf(err, "region identity table %s", path)
	}

	return *table, nil
}

// Graph returns the scene graph, loading the geometry on the first call.
// Cancelling ctx does not abort a load that other callers may be waiting on.
func (l *Loader) Graph(ctx context.Context) (*scene.Graph, error) {
	l.once.Do(func() {
		start := time.Now()
		l.graph, l.err = l.load(context.WithoutCancel(ctx))
		if l.err != nil {
			l.logger.Error("Failed to load map geometry",
				slog.String("bucket", l.bucketURL),
				slog.String("key", l.key),
				slog.Any("error", l.err),
			)

			return
		}
		l.metrics.ObserveGeometryLoad(time.Since(start))
		l.logger.Info("Map geometry loaded",
			slog.String("bucket", l.bucketURL),
			slog.String("key", l.key),
			slog.Int("paths", len(l.graph.Index().All())),
			slog.Int("regions", len(l.graph.Index().Regions())),
			slog.String("size", util.FormatBytes(l.size)),
			slog.String("sha256", l.checksum),
			slog.String("took", util.FormatDuration(time.Since(start))),
		)
	})

	return l.graph, l.err
}

func (l *Loader) load(ctx context.Context) (*scene.Graph, error) {
	bucket, err := openBucket(ctx, l.bucketURL)
	if err != nil {
		return nil, err
	}
	defer bucket.Close()

	r, err := bucket.NewReader(ctx, l.key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open geometry %s", l.key)
	}
	defer r.Close()

	cr := util.NewChecksumReader(r)
	sources, err := ParseSVG(cr)
	if err != nil {
		return nil, err
	}
	l.checksum, l.size = cr.Sum(), cr.Size()

	idx, err := region.Build(sources, l.table)
	if err != nil {
		return nil, errors.Wrap(err, "build region index")
	}

	return scene.Build(idx, l.width, l.height), nil
}

// openBucket accepts any registered gocloud URL. A value without a scheme is
// a local directory, relative to the working directory.
func openBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	if strings.Contains(bucketURL, "://") {
		bucket, err := blob.OpenBucket(ctx, bucketURL)

		return bucket, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	dir, err := filepath.Abs(bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve bucket dir %s", bucketURL)
	}
	bucket, err := fileblob.OpenBucket(dir, nil)

	return bucket, errors.Wrapf(err, "open bucket dir %s", dir)
}
