package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/device_uploader/internal/domain"
)

type Uploader struct {
	log         *slog.Logger
	parser      *Parser
	records     RecordsUpserter
	images      ImagesUpdater
	transactor  Transactor
	blobs       BlobUploader
	uploadBatch string
}

func NewUploader(
	log *slog.Logger,
	parser *Parser,
	records RecordsUpserter,
	images ImagesUpdater,
	transactor Transactor,
	blobs BlobUploader,
	uploadBatch string,
) *Uploader {
	return &Uploader{
		log:         log,
		parser:      parser,
		records:     records,
		images:      images,
		transactor:  transactor,
		blobs:       blobs,
		uploadBatch: uploadBatch,
	}
}

func (u *Uploader) ProcessUnit(ctx context.Context, unit domain.WorkUnit) *domain.UploadOutcome {
	log := u.log.With(slog.String("folder", unit.Name))

	outcome := &domain.UploadOutcome{
		Timestamp:  time.Now(),
		FolderName: unit.Name,
		FolderPath: unit.Path,
	}

	imageFiles, err := listImageFiles(unit.Path)
	if err != nil {
		log.ErrorContext(ctx, "failed to list image files", slog.String("err", err.Error()))
	}
	outcome.ImageUpload.TotalImages = len(imageFiles)

	result := u.parser.ParseFolder(unit)
	outcome.JSONUpload.Filename = result.SourceFile

	log.InfoContext(ctx, "processing folder",
		slog.Int("metadata_files", result.MetadataFiles),
		slog.Int("image_files", len(imageFiles)),
	)

	if result.Error != nil {
		// при ошибке метаданных ничего не загружаем
		outcome.JSONUpload.Error = result.Error.Error()
		log.ErrorContext(ctx, "metadata failure", slog.String("err", result.Error.Error()))
	} else {
		u.upsertRecords(ctx, log, result.Records, outcome)
		u.uploadImages(ctx, log, unit, imageFiles, outcome)
		u.finalizeImages(ctx, log, unit, outcome)
	}

	summarize(result, outcome)

	if err := WriteOutcome(unit.Path, outcome); err != nil {
		log.ErrorContext(ctx, "failed to write marker file", slog.String("err", err.Error()))
	}

	if outcome.Summary.OverallSuccess {
		log.InfoContext(ctx, "folder processed successfully")
	} else {
		log.ErrorContext(ctx, "folder processed with errors")
	}

	return outcome
}

func (u *Uploader) upsertRecords(
	ctx context.Context,
	log *slog.Logger,
	records []*domain.DeviceTest,
	outcome *domain.UploadOutcome,
) {
	for _, record := range records {
		if record.UploadBatch == nil {
			record.UploadBatch = &u.uploadBatch
		}
	}

	// все записи папки пишем одной транзакцией
	err := u.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		return u.records.UpsertRecords(ctx, records...)
	})
	if err != nil {
		outcome.JSONUpload.Error = err.Error()
		outcome.JSONUpload.Retryable = domain.IsRetryable(err)
		log.ErrorContext(ctx, "failed to upsert records", slog.String("err", err.Error()))

		return
	}

	outcome.JSONUpload.Success = true
	outcome.JSONUpload.Records = len(records)

	log.InfoContext(ctx, "records upserted", slog.Int("record_count", len(records)))
}

func (u *Uploader) uploadImages(
	ctx context.Context,
	log *slog.Logger,
	unit domain.WorkUnit,
	imageFiles []string,
	outcome *domain.UploadOutcome,
) {
	for _, filename := range imageFiles {
		uploaded, err := u.uploadImage(ctx, unit, filename)
		if err != nil {
			outcome.ImageUpload.Failures = append(outcome.ImageUpload.Failures, domain.FailedImage{
				Filename:  filename,
				Error:     err.Error(),
				Retryable: domain.IsRetryable(err),
			})
			log.ErrorContext(ctx, "failed to upload image",
				slog.String("image", filename),
				slog.String("err", err.Error()),
			)
			continue
		}

		outcome.ImageUpload.UploadedImages = append(outcome.ImageUpload.UploadedImages, uploaded)

		log.DebugContext(ctx, "image uploaded",
			slog.String("image", filename),
			slog.String("public_url", uploaded.PublicURL),
		)
	}

	outcome.ImageUpload.SuccessfulUploads = len(outcome.ImageUpload.UploadedImages)
	outcome.ImageUpload.FailedUploads = len(outcome.ImageUpload.Failures)
}

func (u *Uploader) uploadImage(ctx context.Context, unit domain.WorkUnit, filename string) (domain.UploadedImage, error) {
	f, err := os.Open(filepath.Join(unit.Path, filename))
	if err != nil {
		return domain.UploadedImage{}, fmt.Errorf("failed to open %q: %w", filename, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return domain.UploadedImage{}, fmt.Errorf("failed to stat %q: %w", filename, err)
	}

	url, err := u.blobs.Upload(ctx, unit.Name, filename, f)
	if err != nil {
		return domain.UploadedImage{}, err
	}

	return domain.UploadedImage{
		Filename:    filename,
		StoragePath: unit.Name + "/" + filename,
		PublicURL:   url,
		SizeBytes:   info.Size(),
	}, nil
}

func (u *Uploader) finalizeImages(
	ctx context.Context,
	log *slog.Logger,
	unit domain.WorkUnit,
	outcome *domain.UploadOutcome,
) {
	if !outcome.JSONUpload.Success || len(outcome.ImageUpload.UploadedImages) == 0 {
		return
	}

	urls := make([]string, 0, len(outcome.ImageUpload.UploadedImages))
	for _, img := range outcome.ImageUpload.UploadedImages {
		urls = append(urls, img.PublicURL)
	}

	updated, err := u.images.UpdateImages(ctx, unit.Name, urls)
	if err != nil {
		outcome.ImageUpload.RecordUpdateError = err.Error()
		log.ErrorContext(ctx, "failed to update records with image urls", slog.String("err", err.Error()))

		return
	}

	outcome.ImageUpload.RecordsUpdated = updated

	log.InfoContext(ctx, "records updated with image urls",
		slog.Int64("records_updated", updated),
		slog.Int("image_urls", len(urls)),
	)
}

func summarize(result *domain.ParseResult, outcome *domain.UploadOutcome) {
	successfulOps := outcome.ImageUpload.SuccessfulUploads
	if outcome.JSONUpload.Success {
		successfulOps++
	}

	failedOps := outcome.ImageUpload.FailedUploads
	if !outcome.JSONUpload.Success {
		failedOps++
	}

	outcome.Summary = domain.OutcomeSummary{
		OverallSuccess:       outcome.JSONUpload.Success && outcome.ImageUpload.FailedUploads == 0,
		TotalFilesProcessed:  result.MetadataFiles + outcome.ImageUpload.TotalImages,
		SuccessfulOperations: successfulOps,
		FailedOperations:     failedOps,
	}
}
