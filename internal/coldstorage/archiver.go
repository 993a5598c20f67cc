// Package coldstorage writes archived log batches as compressed NDJSON
// files. The retention engine only flips archive flags after CompressAndStore
// returns, so a crash never marks logs archived without a durable backup.
package coldstorage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	log "github.com/sirupsen/logrus"

	"github.com/Egor213/LogStream/internal/domain"
	errorsUtils "github.com/Egor213/LogStream/pkg/errors"
)

// ArchiveRef identifies one stored archive.
type ArchiveRef string

type Archiver interface {
	CompressAndStore(ctx context.Context, entries []*domain.LogEntry) (ArchiveRef, error)
}

// FSArchiver stores archives under a root directory, one gzip file per batch.
type FSArchiver struct {
	root string
}

func NewFSArchiver(root string) (*FSArchiver, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return &FSArchiver{root: root}, nil
}

type archiveRecord struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       string          `json:"tenant_id"`
	Timestamp      time.Time       `json:"timestamp"`
	Level          string          `json:"level"`
	Message        string          `json:"message"`
	Template       string          `json:"template,omitempty"`
	Properties     map[string]any  `json:"properties,omitempty"`
	Source         string          `json:"source"`
	Exception      string          `json:"exception,omitempty"`
	Tags           string          `json:"tags,omitempty"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	OriginalFormat string          `json:"original_format"`
	RawContent     string          `json:"raw_content"`
	SizeBytes      int64           `json:"size_bytes"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (a *FSArchiver) CompressAndStore(ctx context.Context, entries []*domain.LogEntry) (ArchiveRef, error) {
	if len(entries) == 0 {
		return "", nil
	}

	name := fmt.Sprintf("logs-%s-%s.ndjson.gz",
		time.Now().UTC().Format("20060102-150405"),
		uuid.NewString())
	path := filepath.Join(a.root, name)

	file, err := os.Create(path)
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	writer := gzip.NewWriter(file)
	encoder := json.NewEncoder(writer)

	var totalBytes int64
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			writer.Close()
			file.Close()
			os.Remove(path)
			return "", err
		}

		if err := encoder.Encode(toArchiveRecord(entry)); err != nil {
			writer.Close()
			file.Close()
			os.Remove(path)
			return "", errorsUtils.WrapPathErr(err)
		}
		totalBytes += entry.SizeBytes
	}

	if err := writer.Close(); err != nil {
		file.Close()
		os.Remove(path)
		return "", errorsUtils.WrapPathErr(err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", errorsUtils.WrapPathErr(err)
	}

	log.WithFields(log.Fields{
		"archive": name,
		"count":   len(entries),
		"bytes":   totalBytes,
	}).Info("Stored archive batch")

	return ArchiveRef(name), nil
}

func toArchiveRecord(e *domain.LogEntry) archiveRecord {
	return archiveRecord{
		ID:             e.ID,
		TenantID:       e.TenantID.String(),
		Timestamp:      e.Timestamp,
		Level:          e.Level.String(),
		Message:        e.Message.Content,
		Template:       e.Message.Template,
		Properties:     e.Message.Properties,
		Source:         e.Source.Identifier(),
		Exception:      e.Exception,
		Tags:           e.Tags,
		Metadata:       e.Metadata,
		OriginalFormat: e.OriginalFormat,
		RawContent:     e.RawContent,
		SizeBytes:      e.SizeBytes,
		CreatedAt:      e.CreatedAt,
	}
}
