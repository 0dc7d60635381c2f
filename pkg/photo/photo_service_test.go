package photo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"agrifusion/domain"
	"agrifusion/internal/testutil"
	"agrifusion/internal/utils/storage"
	"agrifusion/pkg/farmer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setup(t *testing.T) (PhotoService, PhotoRepository, *storage.LocalStorage) {
	t.Helper()
	db := testutil.NewDB(t)
	farmers := farmer.NewFarmerService(farmer.NewFarmerRepository(db), farmer.Config{BcryptCost: bcrypt.MinCost})
	_, err := farmers.Register(context.Background(), domain.RegisterRequest{Username: "ravi", Password: "harvest1"})
	require.NoError(t, err)

	local, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:3000", 1<<20)
	require.NoError(t, err)

	repo := NewPhotoRepository(db)
	return NewPhotoService(repo, farmers, local, 1<<20), repo, local
}

func countFiles(t *testing.T, local *storage.LocalStorage) int {
	t.Helper()
	objects, err := local.ListObjects(Folder)
	require.NoError(t, err)
	return len(objects)
}

func TestUploadPhoto(t *testing.T) {
	ctx := context.Background()
	svc, _, local := setup(t)

	res, err := svc.UploadPhoto(ctx, domain.UploadPhotoRequest{
		Username: "ravi",
		Caption:  "wheat field",
		Photo:    testutil.FileHeader(t, "photo", "field.png", testutil.PNG),
	})
	require.NoError(t, err)
	assert.Equal(t, "field.png", res.Filename)
	assert.Equal(t, "image/png", res.MimeType)
	assert.Equal(t, "http://localhost:3000/uploads/"+res.Path, res.URL)
	assert.Equal(t, int64(len(testutil.PNG)), res.FileSize)

	_, err = os.Stat(filepath.Join(local.Root(), filepath.FromSlash(res.Path)))
	assert.NoError(t, err)

	photos, err := svc.GetPhotos(ctx, "ravi")
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "wheat field", photos[0].Caption)
}

func TestUploadPhoto_RejectsWithoutSideEffects(t *testing.T) {
	ctx := context.Background()
	svc, _, local := setup(t)

	tests := []struct {
		name string
		req  domain.UploadPhotoRequest
		want error
	}{
		{"no file", domain.UploadPhotoRequest{Username: "ravi"}, domain.ErrNoFile},
		{"text file", domain.UploadPhotoRequest{Username: "ravi", Photo: testutil.FileHeader(t, "photo", "notes.txt", []byte("hi"))}, domain.ErrUnsupportedFileType},
		{"unknown farmer", domain.UploadPhotoRequest{Username: "ghost", Photo: testutil.FileHeader(t, "photo", "leaf.png", testutil.PNG)}, domain.ErrFarmerNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UploadPhoto(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	photos, err := svc.GetPhotos(ctx, "ravi")
	require.NoError(t, err)
	assert.Empty(t, photos)
	assert.Zero(t, countFiles(t, local))
}

func TestDeletePhoto(t *testing.T) {
	ctx := context.Background()
	svc, repo, local := setup(t)

	res, err := svc.UploadPhoto(ctx, domain.UploadPhotoRequest{
		Username: "ravi",
		Photo:    testutil.FileHeader(t, "photo", "leaf.png", testutil.PNG),
	})
	require.NoError(t, err)
	require.Equal(t, 1, countFiles(t, local))

	require.NoError(t, svc.DeletePhoto(ctx, res.ID))
	assert.Zero(t, countFiles(t, local))
	_, err = repo.GetPhotoByID(ctx, res.ID)
	assert.Error(t, err)

	assert.ErrorIs(t, svc.DeletePhoto(ctx, res.ID), domain.ErrPhotoNotFound)
	assert.ErrorIs(t, svc.DeletePhoto(ctx, uuid.NewString()), domain.ErrPhotoNotFound)
}

func TestDeletePhoto_MissingFileTolerated(t *testing.T) {
	ctx := context.Background()
	svc, repo, local := setup(t)

	res, err := svc.UploadPhoto(ctx, domain.UploadPhotoRequest{
		Username: "ravi",
		Photo:    testutil.FileHeader(t, "photo", "leaf.png", testutil.PNG),
	})
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(local.Root(), filepath.FromSlash(res.Path))))

	require.NoError(t, svc.DeletePhoto(ctx, res.ID))
	_, err = repo.GetPhotoByID(ctx, res.ID)
	assert.Error(t, err)
}
