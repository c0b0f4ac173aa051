package services

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cocktail-manager/storage"
)

const (
	snapshotPrefix = "cocktails-"
	snapshotSuffix = ".json.gz"
)

// Exporter schreibt Snapshots des Katalogs als gzip-JSON nach S3 und rotiert alte Snapshots.
type Exporter struct {
	DB     *gorm.DB
	S3     storage.ObjectAPI
	Logger *zap.Logger
	Bucket string
	Prefix string
	Keep   int

	now func() time.Time
}

// NewExporter erstellt einen Exporter.
func NewExporter(db *gorm.DB, client storage.ObjectAPI, logger *zap.Logger, bucket, prefix string, keep int) *Exporter {
	return &Exporter{
		DB:     db,
		S3:     client,
		Logger: logger,
		Bucket: bucket,
		Prefix: prefix,
		Keep:   keep,
		now:    time.Now,
	}
}

// Export liest alle Cocktails, lädt den Snapshot hoch und gibt den Objekt-Key zurück.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	cocktails, err := NewCocktailService(e.DB.WithContext(ctx)).GetAll()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := json.NewEncoder(gz).Encode(cocktails); err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	if err := gz.Close(); err != nil {
		return "", fmt.Errorf("compress export: %w", err)
	}

	now := time.Now
	if e.now != nil {
		now = e.now
	}
	key := fmt.Sprintf("%s%s%s%s", e.Prefix, snapshotPrefix, now().UTC().Format("2006-01-02T15-04-05Z"), snapshotSuffix)
	if err := storage.UploadFile(ctx, e.S3, e.Bucket, key, "application/gzip", buf.Bytes()); err != nil {
		return "", err
	}
	e.Logger.Info("Catalog exported",
		zap.String("bucket", e.Bucket),
		zap.String("key", key),
		zap.Int("cocktails", len(cocktails)),
		zap.Int("bytes", buf.Len()))

	if err := e.rotate(ctx); err != nil {
		return key, err
	}
	return key, nil
}

// isSnapshot meldet, ob key ein vom Exporter geschriebener Snapshot ist.
func (e *Exporter) isSnapshot(key string) bool {
	return strings.HasPrefix(key, e.Prefix+snapshotPrefix) && strings.HasSuffix(key, snapshotSuffix)
}

// rotate behält die neuesten Keep Snapshots unter dem Prefix. Fremde Objekte werden nie gelöscht.
func (e *Exporter) rotate(ctx context.Context) error {
	if e.Keep <= 0 {
		return nil
	}
	output, err := e.S3.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(e.Bucket),
		Prefix: aws.String(e.Prefix + snapshotPrefix),
	})
	if err != nil {
		return fmt.Errorf("list exports: %w", err)
	}

	var objects []types.Object
	for _, obj := range output.Contents {
		if e.isSnapshot(aws.ToString(obj.Key)) {
			objects = append(objects, obj)
		}
	}
	if len(objects) <= e.Keep {
		return nil
	}

	sort.Slice(objects, func(i, j int) bool {
		return aws.ToTime(objects[i].LastModified).After(aws.ToTime(objects[j].LastModified))
	})

	for _, obj := range objects[e.Keep:] {
		e.Logger.Info("Deleting old export", zap.String("key", aws.ToString(obj.Key)))
		_, err := e.S3.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(e.Bucket),
			Key:    obj.Key,
		})
		if err != nil {
			e.Logger.Warn("Failed to delete old export", zap.String("key", aws.ToString(obj.Key)), zap.Error(err))
		}
	}
	return nil
}
