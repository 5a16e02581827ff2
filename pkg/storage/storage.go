// Package storage keeps beer images on the local filesystem and hands out their public URLs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/configs"
)

var ErrInvalidImage = errors.New("invalid image")

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

type Store struct {
	dir      string
	baseURL  string
	maxBytes int64
	logger   *zap.Logger
}

func New(conf configs.Storage, publicURL string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(conf.ImageDir, 0o755); err != nil {
		return nil, err
	}

	base, err := url.JoinPath(publicURL, conf.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", configs.ErrConfiguration, err)
	}

	return &Store{
		dir:      conf.ImageDir,
		baseURL:  strings.TrimSuffix(base, "/") + "/",
		maxBytes: conf.MaxImageBytes,
		logger:   logger,
	}, nil
}

// Put validates and stores an image, returning its public URL. The object is named after the beer when
// one is given.
func (s *Store) Put(_ context.Context, beerID uuid.UUID, filename string, contentType string, data []byte) (string, error) {
	extension, err := s.validate(filename, contentType, data)
	if err != nil {
		return "", err
	}

	prefix := "beer"
	if beerID != uuid.Nil {
		prefix = beerID.String()
	}

	key := fmt.Sprintf("%s_%s.%s", prefix, xid.New().String(), extension)

	temp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", err
	}

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(temp.Name())

		return "", err
	}

	if err := temp.Close(); err != nil {
		_ = os.Remove(temp.Name())

		return "", err
	}

	if err := os.Rename(temp.Name(), filepath.Join(s.dir, key)); err != nil {
		_ = os.Remove(temp.Name())

		return "", err
	}

	s.logger.Info("Stored image", zap.String("key", key), zap.Int("bytes", len(data)))

	return s.baseURL + key, nil
}

// Delete removes the object behind a URL issued by this store. Other URLs and missing objects are ignored.
func (s *Store) Delete(_ context.Context, imageURL string) error {
	key, ok := s.keyOf(imageURL)
	if !ok {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// Handler serves the stored images read-only; mount it under the configured image path.
func (s *Store) Handler() http.Handler {
	return http.FileServer(http.Dir(s.dir))
}

func (s *Store) validate(filename string, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrInvalidImage)
	}

	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrInvalidImage, len(data), s.maxBytes)
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	extension, ok := extensions[strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))]
	if !ok {
		return "", fmt.Errorf("%w: unsupported type %q for %q", ErrInvalidImage, contentType, filename)
	}

	return extension, nil
}

func (s *Store) keyOf(imageURL string) (string, bool) {
	if !strings.HasPrefix(imageURL, s.baseURL) {
		return "", false
	}

	key := strings.TrimPrefix(imageURL, s.baseURL)
	if key == "" || key != path.Base(key) || strings.HasPrefix(key, ".") {
		return "", false
	}

	return key, true
}
