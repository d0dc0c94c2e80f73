package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kurochkinivan/device_uploader/internal/config"
	"github.com/kurochkinivan/device_uploader/internal/pipeline"
	"github.com/kurochkinivan/device_uploader/internal/repository/postgresql"
	"github.com/kurochkinivan/device_uploader/internal/storage"
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("root_dir", a.cfg.App.RootDirectory),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	a.log.InfoContext(ctx, "connecting to blob storage",
		slog.String("s3_bucket", a.cfg.S3.Bucket),
		slog.String("s3_endpoint", a.cfg.S3.Endpoint),
	)

	blobs, err := storage.NewS3BlobStore(ctx, storage.S3Config{
		Endpoint:        a.cfg.S3.Endpoint,
		Region:          a.cfg.S3.Region,
		Bucket:          a.cfg.S3.Bucket,
		AccessKeyID:     a.cfg.S3.AccessKeyID,
		SecretAccessKey: a.cfg.S3.SecretAccessKey,
		PublicBaseURL:   a.cfg.S3.PublicBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create blob store: %w", err)
	}

	recordsRepository := postgresql.NewDeviceTestsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	return a.runBatch(ctx, recordsRepository, txManager, blobs)
}

func (a *App) runBatch(
	ctx context.Context,
	records *postgresql.DeviceTestsRepository,
	txManager *postgresql.TxManager,
	blobs *storage.S3BlobStore,
) error {
	scanner := pipeline.NewScanner(a.log, a.cfg.App.RootDirectory)

	units, err := scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan root folder: %w", err)
	}

	if len(units) == 0 {
		a.log.InfoContext(ctx, "no folders to process")

		return nil
	}

	batch := uuid.NewString()
	parser := pipeline.NewParser(a.log)
	uploader := pipeline.NewUploader(a.log, parser, records, records, txManager, blobs, batch)

	a.log.InfoContext(ctx, "batch started",
		slog.String("upload_batch", batch),
		slog.Int("folders", len(units)),
	)

	var succeeded, failed int

	for _, unit := range units {
		if ctx.Err() != nil {
			a.log.InfoContext(ctx, "batch interrupted",
				slog.Int("succeeded", succeeded),
				slog.Int("failed", failed),
				slog.Int("remaining", len(units)-succeeded-failed),
			)

			return nil
		}

		outcome := uploader.ProcessUnit(ctx, unit)
		if outcome.Summary.OverallSuccess {
			succeeded++
		} else {
			failed++
		}
	}

	a.log.InfoContext(ctx, "batch finished",
		slog.Int("folders", len(units)),
		slog.Int("succeeded", succeeded),
		slog.Int("failed", failed),
	)

	return nil
}
