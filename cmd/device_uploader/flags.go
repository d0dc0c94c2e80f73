package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/device_uploader/internal/app"
	"github.com/kurochkinivan/device_uploader/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:      "device_uploader",
		Usage:     "Batch uploader for device test folders",
		ArgsUsage: "[root-dir]",
		Version:   version,
		Flags:     flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_HOST"), yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_PORT"), yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_USERNAME"), yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_PASSWORD"), yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "device_uploader",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_DBNAME"), yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PG_SSLMODE"), yaml.YAML("postgresql.sslmode", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "Set S3 endpoint URL, empty means AWS",
			Sources: cli.NewValueSourceChain(cli.EnvVar("S3_ENDPOINT"), yaml.YAML("s3.endpoint", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "s3-region",
			Usage:   "Set S3 region",
			Value:   "us-east-1",
			Sources: cli.NewValueSourceChain(cli.EnvVar("S3_REGION"), yaml.YAML("s3.region", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "s3-bucket",
			Usage:    "Set S3 bucket for image uploads",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("S3_BUCKET"), yaml.YAML("s3.bucket", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "s3-access-key",
			Usage:   "Set S3 access key ID, empty falls back to the SDK credential chain",
			Sources: cli.NewValueSourceChain(cli.EnvVar("S3_ACCESS_KEY"), yaml.YAML("s3.access_key", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "s3-secret-key",
			Usage:   "Set S3 secret access key",
			Sources: cli.NewValueSourceChain(cli.EnvVar("S3_SECRET_KEY"), yaml.YAML("s3.secret_key", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "s3-public-base-url",
			Usage:   "Set public base URL for uploaded images, overrides the endpoint-derived one",
			Sources: cli.NewValueSourceChain(cli.EnvVar("S3_PUBLIC_BASE_URL"), yaml.YAML("s3.public_base_url", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
