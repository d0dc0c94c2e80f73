package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/device_uploader/internal/domain"
)

const defaultDataType = "device_test"

type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	return &Parser{
		log: log,
	}
}

type payload struct {
	DataType    *string         `json:"data_type"`
	DeviceID    *string         `json:"device_id"`
	DeviceName  *string         `json:"device_name"`
	DeviceType  *string         `json:"device_type"`
	TestResults json.RawMessage `json:"test_results"`
	TestDate    *string         `json:"test_date"`
	TestStatus  *string         `json:"test_status"`
	UploadBatch *string         `json:"upload_batch"`
	Notes       *string         `json:"notes"`
	Metadata    json.RawMessage `json:"metadata"`
}

func (p *Parser) ParseFolder(unit domain.WorkUnit) *domain.ParseResult {
	files, err := listMetadataFiles(unit.Path)
	if err != nil {
		return &domain.ParseResult{Error: err}
	}

	result := &domain.ParseResult{MetadataFiles: len(files)}

	switch {
	case len(files) == 0:
		result.Error = domain.ErrNoMetadata
		return result

	case len(files) > 1:
		result.Error = fmt.Errorf("%w: %v", domain.ErrAmbiguousMetadata, files)
		return result
	}

	result.SourceFile = files[0]

	data, err := os.ReadFile(filepath.Join(unit.Path, files[0]))
	if err != nil {
		result.Error = fmt.Errorf("failed to read %q: %w", files[0], err)
		return result
	}

	records, err := p.parseRecords(unit.Name, data)
	if err != nil {
		result.Error = fmt.Errorf("failed to parse %q: %w", files[0], err)
		return result
	}

	result.Records = records

	p.log.Debug("successfully parsed metadata",
		slog.String("folder", unit.Name),
		slog.Int("record_count", len(records)),
	)

	return result
}

func (p *Parser) parseRecords(folderName string, data []byte) ([]*domain.DeviceTest, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	switch firstJSONByte(raw) {
	case '{':
		record, err := p.mapRecord(folderName, raw)
		if err != nil {
			return nil, err
		}

		return []*domain.DeviceTest{record}, nil

	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("failed to decode JSON array: %w", err)
		}

		var records []*domain.DeviceTest
		for _, item := range items {
			if firstJSONByte(item) != '{' {
				continue
			}

			record, err := p.mapRecord(folderName, item)
			if err != nil {
				return nil, fmt.Errorf("record #%d: %w", len(records)+1, err)
			}

			records = append(records, record)
		}

		if len(records) == 0 {
			return nil, errors.New("no valid records found in JSON array")
		}

		return records, nil

	default:
		return nil, errors.New("unsupported JSON payload, expected an object or an array of objects")
	}
}

func (p *Parser) mapRecord(folderName string, item json.RawMessage) (*domain.DeviceTest, error) {
	var pl payload
	if err := json.Unmarshal(item, &pl); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(item, &present); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	// дефолты только для отсутствующих ключей, явный null остается null
	if _, ok := present["data_type"]; !ok {
		pl.DataType = strPtr(defaultDataType)
	}

	if _, ok := present["test_status"]; !ok {
		pl.TestStatus = strPtr(domain.TestStatusPending)
	}

	metadata := normalizeJSON(pl.Metadata)
	if _, ok := present["metadata"]; !ok {
		metadata = json.RawMessage(`{}`)
	}

	record := &domain.DeviceTest{
		FolderName:  folderName,
		UploadBatch: pl.UploadBatch,
		DeviceID:    pl.DeviceID,
		DeviceName:  pl.DeviceName,
		DeviceType:  pl.DeviceType,
		DataType:    pl.DataType,
		Data:        item,
		TestResults: normalizeJSON(pl.TestResults),
		TestDate:    pl.TestDate,
		TestStatus:  pl.TestStatus,
		Notes:       pl.Notes,
		Metadata:    metadata,
	}

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid record: %w", err)
	}

	return record, nil
}

func firstJSONByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}

	return trimmed[0]
}

func normalizeJSON(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	return raw
}

func strPtr(s string) *string {
	return &s
}
