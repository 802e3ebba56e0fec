package corpus

import (
	"text2phenotype.com/postag/logger"
	"errors"
	"fmt"
	"os"
	"strings"
)

const s3Scheme = "s3://"

var ErrBadLocation = errors.New("bad storage location")

// ObjectStorage is the part of the S3 client the store needs.
type ObjectStorage interface {
	Download(bucket string, key string) ([]byte, error)
	Upload(bucket string, key string, data []byte) error
}

// Store reads and writes corpus files given either a local path or an
// s3://bucket/key location. The S3 client is only created when the first
// s3:// location is used.
type Store struct {
	newObjectStorage func() (ObjectStorage, error)
	objectStorage    ObjectStorage
}

func NewStore(newObjectStorage func() (ObjectStorage, error)) *Store {
	return &Store{newObjectStorage: newObjectStorage}
}

func ParseS3Location(location string) (bucket string, key string, ok bool, err error) {
	if !strings.HasPrefix(location, s3Scheme) {
		return "", "", false, nil
	}
	parts := strings.SplitN(strings.TrimPrefix(location, s3Scheme), "/", 2)
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return "", "", true, fmt.Errorf("%w: %q, expected s3://bucket/key", ErrBadLocation, location)
	}
	return parts[0], parts[1], true, nil
}

func (store *Store) objects() (ObjectStorage, error) {
	if store.objectStorage != nil {
		return store.objectStorage, nil
	}
	if store.newObjectStorage == nil {
		return nil, fmt.Errorf("%w: object storage is not configured", ErrBadLocation)
	}
	objectStorage, err := store.newObjectStorage()
	if err != nil {
		return nil, err
	}
	store.objectStorage = objectStorage
	return objectStorage, nil
}

func (store *Store) Read(location string) ([]byte, error) {
	storeLogger := logger.NewLogger("Corpus store")
	bucket, key, isS3, err := ParseS3Location(location)
	if err != nil {
		return nil, err
	}
	if !isS3 {
		storeLogger.Debug().Str("location", location).Msg("Reading local file")
		return os.ReadFile(location)
	}

	objectStorage, err := store.objects()
	if err != nil {
		return nil, err
	}
	storeLogger.Debug().Str("bucket", bucket).Str("key", key).Msg("Downloading object")
	return objectStorage.Download(bucket, key)
}

func (store *Store) Write(location string, data []byte) error {
	storeLogger := logger.NewLogger("Corpus store")
	bucket, key, isS3, err := ParseS3Location(location)
	if err != nil {
		return err
	}
	if !isS3 {
		storeLogger.Debug().Str("location", location).Int("bytes", len(data)).Msg("Writing local file")
		return os.WriteFile(location, data, 0644)
	}

	objectStorage, err := store.objects()
	if err != nil {
		return err
	}
	storeLogger.Debug().Str("bucket", bucket).Str("key", key).Int("bytes", len(data)).Msg("Uploading object")
	return objectStorage.Upload(bucket, key, data)
}
