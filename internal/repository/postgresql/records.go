package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/device_uploader/internal/domain"
)

const TableDeviceTests = "device_tests"

type DeviceTestsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewDeviceTestsRepository(pool *pgxpool.Pool) *DeviceTestsRepository {
	return &DeviceTestsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *DeviceTestsRepository) UpsertRecords(ctx context.Context, records ...*domain.DeviceTest) error {
	db := extractDB(ctx, r.pool)

	for i, record := range records {
		sql, args, err := r.qb.
			Insert(TableDeviceTests).
			Columns(
				"folder_name",
				"upload_batch",
				"device_id",
				"device_name",
				"device_type",
				"data_type",
				"data",
				"test_results",
				"test_date",
				"test_status",
				"notes",
				"metadata",
			).
			Values(
				record.FolderName,
				record.UploadBatch,
				record.DeviceID,
				record.DeviceName,
				record.DeviceType,
				record.DataType,
				record.Data,
				record.TestResults,
				sq.Expr("?::date", record.TestDate),
				record.TestStatus,
				record.Notes,
				record.Metadata,
			).
			// images при конфликте не трогаем, собранные URL переживают перезаливку метаданных
			Suffix(`ON CONFLICT (folder_name, device_id) DO UPDATE SET
				upload_batch = EXCLUDED.upload_batch,
				device_name  = EXCLUDED.device_name,
				device_type  = EXCLUDED.device_type,
				data_type    = EXCLUDED.data_type,
				data         = EXCLUDED.data,
				test_results = EXCLUDED.test_results,
				test_date    = EXCLUDED.test_date,
				test_status  = EXCLUDED.test_status,
				notes        = EXCLUDED.notes,
				metadata     = EXCLUDED.metadata,
				updated_at   = now()
			RETURNING id::text, created_at, updated_at`).
			ToSql()
		if err != nil {
			return createQueryError(err)
		}

		if err := db.QueryRow(ctx, sql, args...).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return fmt.Errorf("record #%d: %w", i+1, scanRowError(err))
		}
	}

	return nil
}

func (r *DeviceTestsRepository) UpdateImages(ctx context.Context, folderName string, imageURLs []string) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableDeviceTests).
		Set("images", imageURLs).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"folder_name": folderName}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
