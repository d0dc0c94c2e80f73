package domain

import "time"

const (
	SuccessMarker = "upload_success.json"
	FailedMarker  = "upload_failed.json"
)

type UploadOutcome struct {
	Timestamp   time.Time          `json:"timestamp"`
	FolderName  string             `json:"folder_name"`
	FolderPath  string             `json:"folder_path"`
	JSONUpload  JSONUploadOutcome  `json:"json_upload"`
	ImageUpload ImageUploadOutcome `json:"image_upload"`
	Summary     OutcomeSummary     `json:"summary"`
}

type JSONUploadOutcome struct {
	Success   bool   `json:"success"`
	Filename  string `json:"filename,omitempty"`
	Records   int    `json:"records,omitempty"`
	Error     string `json:"error,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

type ImageUploadOutcome struct {
	TotalImages       int             `json:"total_images"`
	SuccessfulUploads int             `json:"successful_uploads"`
	FailedUploads     int             `json:"failed_uploads"`
	UploadedImages    []UploadedImage `json:"uploaded_images"`
	Failures          []FailedImage   `json:"failures"`
	RecordsUpdated    int64           `json:"records_updated,omitempty"`
	RecordUpdateError string          `json:"record_update_error,omitempty"`
}

type UploadedImage struct {
	Filename    string `json:"filename"`
	StoragePath string `json:"storage_path"`
	PublicURL   string `json:"public_url"`
	SizeBytes   int64  `json:"size_bytes"`
}

type FailedImage struct {
	Filename  string `json:"filename"`
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

type OutcomeSummary struct {
	OverallSuccess       bool `json:"overall_success"`
	TotalFilesProcessed  int  `json:"total_files_processed"`
	SuccessfulOperations int  `json:"successful_operations"`
	FailedOperations     int  `json:"failed_operations"`
}

func (o *UploadOutcome) MarkerName() string {
	if o.Summary.OverallSuccess {
		return SuccessMarker
	}

	return FailedMarker
}
