package pipeline

import (
	"context"
	"io"

	"github.com/kurochkinivan/device_uploader/internal/domain"
)

type RecordsUpserter interface {
	UpsertRecords(ctx context.Context, records ...*domain.DeviceTest) error
}

type ImagesUpdater interface {
	UpdateImages(ctx context.Context, folderName string, imageURLs []string) (int64, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type BlobUploader interface {
	Upload(ctx context.Context, folder, filename string, data io.Reader) (string, error)
}
