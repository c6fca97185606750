package history

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"progress-tracker/core/library"
	"progress-tracker/core/storage"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const reportTimeLayout = "20060102T150405Z"

// Exporter writes run reports to object storage and prunes old ones.
type Exporter struct {
	client    storage.Client
	bucket    string
	prefix    string
	retention int
	logger    *zap.Logger
}

// NewExporter creates a report exporter. A retention of zero keeps every report.
func NewExporter(client storage.Client, bucket, prefix string, retention int, logger *zap.Logger) *Exporter {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Exporter{client: client, bucket: bucket, prefix: prefix, retention: retention, logger: logger}
}

// ObjectName returns the key a run is exported under. Keys sort by start time.
func (e *Exporter) ObjectName(run library.SyncRun) string {
	return path.Join(e.prefix, fmt.Sprintf("%s-%s.json", run.StartedAt.UTC().Format(reportTimeLayout), run.ID))
}

// Export uploads a run report and applies retention.
func (e *Exporter) Export(ctx context.Context, run library.SyncRun) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	name := e.ObjectName(run)
	_, err = e.client.PutObject(ctx, e.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload report %s: %w", name, err)
	}
	e.logger.Debug("Exported sync report", zap.String("object", name))

	return e.Prune(ctx)
}

// Prune removes the oldest reports beyond the retention count.
func (e *Exporter) Prune(ctx context.Context) error {
	if e.retention <= 0 {
		return nil
	}

	var keys []string
	for obj := range e.client.ListObjects(ctx, e.bucket, minio.ListObjectsOptions{Prefix: e.prefix, Recursive: true}) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list reports: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			keys = append(keys, obj.Key)
		}
	}
	if len(keys) <= e.retention {
		return nil
	}

	sort.Strings(keys)
	stale := keys[:len(keys)-e.retention]

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, key := range stale {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	failed := 0
	for rErr := range e.client.RemoveObjects(ctx, e.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed++
		e.logger.Warn("Failed to remove report", zap.String("object", rErr.ObjectName), zap.Error(rErr.Err))
	}
	if failed > 0 {
		return fmt.Errorf("failed to remove %d of %d stale reports", failed, len(stale))
	}

	e.logger.Debug("Pruned sync reports", zap.Int("removed", len(stale)))
	return nil
}
