package storage_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BeerFinder/configs"
	"droscher.com/BeerFinder/pkg/storage"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type StorageTestSuite struct {
	suite.Suite
	dir   string
	store *storage.Store
}

func TestStorageTestSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (suite *StorageTestSuite) SetupTest() {
	var err error

	suite.dir = suite.T().TempDir()
	suite.store, err = storage.New(configs.Storage{
		ImageDir:      suite.dir,
		ImagePath:     "/images/",
		MaxImageBytes: 64,
	}, "https://beers.test", zaptest.NewLogger(suite.T()))
	suite.Require().NoError(err)
}

func (suite *StorageTestSuite) TestPut_NamesObjectAfterBeer() {
	beerID := uuid.New()

	imageURL, err := suite.store.Put(context.Background(), beerID, "ipa.png", "image/png", pngHeader)
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(imageURL, "https://beers.test/images/"+beerID.String()+"_"), imageURL)
	suite.True(strings.HasSuffix(imageURL, ".png"))

	stored, err := os.ReadFile(filepath.Join(suite.dir, strings.TrimPrefix(imageURL, "https://beers.test/images/")))
	suite.Require().NoError(err)
	suite.Equal(pngHeader, stored)
}

func (suite *StorageTestSuite) TestPut_UsesGenericPrefixWithoutBeer() {
	imageURL, err := suite.store.Put(context.Background(), uuid.Nil, "new.gif", "image/gif", []byte("GIF89a"))
	suite.Require().NoError(err)
	suite.Contains(imageURL, "/images/beer_")
	suite.True(strings.HasSuffix(imageURL, ".gif"))
}

func (suite *StorageTestSuite) TestPut_SniffsMissingContentType() {
	imageURL, err := suite.store.Put(context.Background(), uuid.Nil, "photo", "", pngHeader)
	suite.Require().NoError(err)
	suite.True(strings.HasSuffix(imageURL, ".png"))
}

func (suite *StorageTestSuite) TestPut_RejectsInvalidImages() {
	ctx := context.Background()

	_, err := suite.store.Put(ctx, uuid.Nil, "notes.txt", "text/plain", []byte("hello"))
	suite.Require().ErrorIs(err, storage.ErrInvalidImage)

	_, err = suite.store.Put(ctx, uuid.Nil, "empty.png", "image/png", nil)
	suite.Require().ErrorIs(err, storage.ErrInvalidImage)

	_, err = suite.store.Put(ctx, uuid.Nil, "huge.png", "image/png", bytes.Repeat([]byte{1}, 65))
	suite.Require().ErrorIs(err, storage.ErrInvalidImage)

	entries, err := os.ReadDir(suite.dir)
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *StorageTestSuite) TestDelete_OnlyOwnedObjects() {
	ctx := context.Background()
	imageURL, err := suite.store.Put(ctx, uuid.Nil, "a.png", "image/png", pngHeader)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.store.Delete(ctx, "https://elsewhere.test/images/a.png"))
	suite.Require().NoError(suite.store.Delete(ctx, "https://beers.test/images/../config.toml"))

	entries, err := os.ReadDir(suite.dir)
	suite.Require().NoError(err)
	suite.Len(entries, 1)

	suite.Require().NoError(suite.store.Delete(ctx, imageURL))
	suite.Require().NoError(suite.store.Delete(ctx, imageURL))

	entries, err = os.ReadDir(suite.dir)
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *StorageTestSuite) TestHandler_ServesImages() {
	imageURL, err := suite.store.Put(context.Background(), uuid.Nil, "a.png", "image/png", pngHeader)
	suite.Require().NoError(err)

	request := httptest.NewRequest(http.MethodGet, "/"+filepath.Base(imageURL), nil)
	recorder := httptest.NewRecorder()
	suite.store.Handler().ServeHTTP(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal(pngHeader, recorder.Body.Bytes())
}
