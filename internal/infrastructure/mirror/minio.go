package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"catalog-backend/internal/config"
)

const objectPrefix = "books/"

// MinIOMirror stores one JSON document per book in an object bucket,
// keyed by the book's slug.
type MinIOMirror struct {
	client *minio.Client
	bucket string
}

// NewMinIOMirror builds the client once at startup; it is shared and reused
// for the life of the process.
func NewMinIOMirror(cfg config.MirrorConfig) (*MinIOMirror, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mirror client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check mirror bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create mirror bucket: %w", err)
		}
	}

	return &MinIOMirror{client: client, bucket: cfg.Bucket}, nil
}

func objectKey(slug string) string {
	return objectPrefix + slug + ".json"
}

func (m *MinIOMirror) Upsert(ctx context.Context, doc BookDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	_, err = m.client.PutObject(
		ctx,
		m.bucket,
		objectKey(doc.Slug),
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to upsert document %s: %w", doc.Slug, err)
	}

	return nil
}

func (m *MinIOMirror) Remove(ctx context.Context, slug string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectKey(slug), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove document %s: %w", slug, err)
	}
	return nil
}

func (m *MinIOMirror) List(ctx context.Context) ([]BookDocument, error) {
	objectsCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    objectPrefix,
		Recursive: true,
	})

	var docs []BookDocument
	for object := range objectsCh {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", object.Err)
		}

		obj, err := m.client.GetObject(ctx, m.bucket, object.Key, minio.GetObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to get document %s: %w", object.Key, err)
		}

		data, err := io.ReadAll(obj)
		obj.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", object.Key, err)
		}

		var doc BookDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document %s: %w", object.Key, err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (m *MinIOMirror) Enabled() bool { return true }
