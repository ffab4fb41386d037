package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"licadmin/internal/repository"
	"licadmin/internal/storage"
)

// presignExpiry bounds how long an export download link stays valid.
const presignExpiry = 15 * time.Minute

// AuditExportResult names the uploaded CSV object and a presigned URL for
// downloading it without credentials.
type AuditExportResult struct {
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
}

// AuditExportService writes the license audit trail to object storage.
type AuditExportService interface {
	// Export uploads the full audit trail as a CSV object and returns a
	// time-limited download URL. Storage is rolled back if presigning fails.
	Export(ctx context.Context) (*AuditExportResult, error)
}

type auditExportService struct {
	store     storage.Storage
	histories repository.LicenseHistoryRepository
}

// NewAuditExportService constructs a new AuditExportService.
func NewAuditExportService(store storage.Storage, histories repository.LicenseHistoryRepository) AuditExportService {
	return &auditExportService{store: store, histories: histories}
}

func (s *auditExportService) Export(ctx context.Context) (*AuditExportResult, error) {
	records, err := s.histories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load audit trail: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "license_id", "user_id", "status", "description", "change_date"}); err != nil {
		return nil, err
	}
	for _, h := range records {
		row := []string{
			strconv.FormatInt(h.ID, 10),
			strconv.FormatInt(h.LicenseID, 10),
			strconv.FormatInt(h.UserID, 10),
			h.Status,
			h.Description,
			h.ChangeDate.Format(changeDateLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	key := "exports/license-history-" + uuid.New().String() + ".csv"
	_, err = s.store.Put(ctx, key, &buf, storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: "text/csv",
		Metadata: map[string]string{
			"record-count": strconv.Itoa(len(records)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, presignExpiry)
	if err != nil {
		// Rollback: drop the orphaned object
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("presign export: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign export: %w", err)
	}

	return &AuditExportResult{ObjectKey: key, URL: url}, nil
}
