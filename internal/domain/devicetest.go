package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type DeviceTest struct {
	ID          string          `db:"id"           json:"id"`
	CreatedAt   time.Time       `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"   json:"updated_at"`
	FolderName  string          `db:"folder_name"  json:"folder_name"`
	UploadBatch *string         `db:"upload_batch" json:"upload_batch"`
	DeviceID    *string         `db:"device_id"    json:"device_id"`
	DeviceName  *string         `db:"device_name"  json:"device_name"`
	DeviceType  *string         `db:"device_type"  json:"device_type"`
	DataType    *string         `db:"data_type"    json:"data_type"`
	Data        json.RawMessage `db:"data"         json:"data"`
	TestResults json.RawMessage `db:"test_results" json:"test_results"`
	TestDate    *string         `db:"test_date"    json:"test_date"`
	TestStatus  *string         `db:"test_status"  json:"test_status"`
	Notes       *string         `db:"notes"        json:"notes"`
	Images      []string        `db:"images"       json:"images"`
	Metadata    json.RawMessage `db:"metadata"     json:"metadata"`
}

func (t *DeviceTest) Validate() error {
	if t.FolderName == "" {
		return fmt.Errorf("folder_name is required")
	}

	if t.TestStatus != nil && !ValidTestStatus(*t.TestStatus) {
		return fmt.Errorf("invalid test_status %q", *t.TestStatus)
	}

	return nil
}
