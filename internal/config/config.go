package config

import (
	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	S3
}

type App struct {
	RootDirectory string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
}

type S3 struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

func Load(cmd *cli.Command) *Config {
	root := cmd.Args().First()
	if root == "" {
		root = "."
	}

	return &Config{
		App: App{
			RootDirectory: root,
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
		},
		S3: S3{
			Endpoint:        cmd.String("s3-endpoint"),
			Region:          cmd.String("s3-region"),
			Bucket:          cmd.String("s3-bucket"),
			AccessKeyID:     cmd.String("s3-access-key"),
			SecretAccessKey: cmd.String("s3-secret-key"),
			PublicBaseURL:   cmd.String("s3-public-base-url"),
		},
	}
}
