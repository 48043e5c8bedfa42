package mongo

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentBucket is the GridFS bucket holding vendor verification files.
const DocumentBucket = "vendor-documents"

// DocumentStorage stores uploaded files in GridFS, keyed by their path.
type DocumentStorage struct {
	db *mongo.Database
}

func NewDocumentStorage(db *mongo.Database) *DocumentStorage {
	return &DocumentStorage{db: db}
}

// Upload streams r into the bucket under path. A bucket is opened per call
// because the write deadline is bucket-scoped.
func (s *DocumentStorage) Upload(ctx context.Context, path, contentType string, r io.Reader) error {
	bucket, err := gridfs.NewBucket(s.db, options.GridFSBucket().SetName(DocumentBucket))
	if err != nil {
		return fmt.Errorf("open bucket: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := bucket.SetWriteDeadline(deadline); err != nil {
			return fmt.Errorf("set write deadline: %w", err)
		}
	}

	opts := options.GridFSUpload().SetMetadata(bson.M{"content_type": contentType})
	if _, err := bucket.UploadFromStream(path, r, opts); err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return nil
}
