// Package blobstore implements the key-value persistence layer on gocloud.dev/blob.
// A mem:// bucket gives an ephemeral store; a file:// bucket keeps the
// collections on disk between sessions.
package blobstore

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"wozmarket/config"
	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/domain/lifecycle"
	"wozmarket/internal/domain/repository"
	"wozmarket/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const jsonContentType = "application/json"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Store is a KeyValueStore backed by a blob bucket.
type Store struct {
	bucket *blob.Bucket
}

var _ repository.KeyValueStore = (*Store)(nil)

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (repository.KeyValueStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	storeURL := params.Config.Store.URL
	store, err := Open(ctx, storeURL)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Debug("Closing store", slog.String("url", storeURL))

			return store.Close()
		},
	})

	return store, nil
}

// Open opens a bucket by URL. file:// URLs may be relative ("file://./data")
// and the directory is created when missing.
func Open(ctx context.Context, storeURL string) (*Store, error) {
	u, err := url.Parse(storeURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse store url %q", storeURL)
	}

	var bucket *blob.Bucket
	if u.Scheme == fileblob.Scheme {
		bucket, err = fileblob.OpenBucket(u.Host+u.Path, &fileblob.Options{CreateDir: true})
	} else {
		bucket, err = blob.OpenBucket(ctx, storeURL)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open store %q", storeURL)
	}

	return NewFromBucket(bucket), nil
}

// NewFromBucket wraps an already opened bucket.
func NewFromBucket(bucket *blob.Bucket) *Store {
	return &Store{bucket: bucket}
}

// Get returns the raw value for key and whether it exists.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, false, nil
		}

		return nil, false, domainerrors.NewStoreExecuteError(err, "failed to read "+key)
	}

	return data, true, nil
}

// Set stores value under key, overwriting any prior value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: jsonContentType}); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to write "+key)
	}

	return nil
}

// Has reports whether key exists.
func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	ok, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, domainerrors.NewStoreExecuteError(err, "failed to stat "+key)
	}

	return ok, nil
}

// Delete removes key; deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return domainerrors.NewStoreExecuteError(err, "failed to delete "+key)
	}

	return nil
}

// Keys lists the keys starting with prefix, in lexical order.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	it := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := it.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list "+prefix)
		}
		if obj.IsDir || !strings.HasPrefix(obj.Key, prefix) {
			continue
		}
		keys = append(keys, obj.Key)
	}

	return keys, nil
}

// Close releases the bucket.
func (s *Store) Close() error {
	return errors.Wrap(s.bucket.Close(), "close store")
}
