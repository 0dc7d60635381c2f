package disease

import (
	"context"
	"math"
	"testing"

	"agrifusion/domain"
	"agrifusion/entities"
	"agrifusion/internal/testutil"
	"agrifusion/internal/utils/storage"
	"agrifusion/pkg/farmer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setup(t *testing.T) (DiseaseService, *storage.LocalStorage) {
	t.Helper()
	db := testutil.NewDB(t)
	farmers := farmer.NewFarmerService(farmer.NewFarmerRepository(db), farmer.Config{BcryptCost: bcrypt.MinCost})
	_, err := farmers.Register(context.Background(), domain.RegisterRequest{Username: "ravi", Password: "harvest1"})
	require.NoError(t, err)

	local, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:3000", 1<<20)
	require.NoError(t, err)
	return NewDiseaseService(NewDiseaseRepository(db), farmers, local, 1<<20), local
}

func detection(t *testing.T, disease string, healthy bool) domain.SaveDiseaseDetectionRequest {
	return domain.SaveDiseaseDetectionRequest{
		Username:        "ravi",
		Image:           testutil.FileHeader(t, "image", "leaf.png", testutil.PNG),
		Crop:            "tomato",
		DetectedDisease: disease,
		IsHealthy:       healthy,
		Confidence:      0.91,
	}
}

func TestSaveDetection_KeepsPesticideOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	req := detection(t, "blight", false)
	req.Pesticides = []entities.Pesticide{
		{Name: "Mancozeb", Type: "fungicide", Dosage: "2g/L"},
		{Name: "Copper oxychloride", Type: "fungicide", Frequency: "weekly"},
	}
	saved, err := svc.SaveDetection(ctx, req)
	require.NoError(t, err)
	assert.Contains(t, saved.URL, "/uploads/diseases/")

	list, err := svc.GetDetections(ctx, "ravi")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Pesticides, 2)
	assert.Equal(t, "Mancozeb", list[0].Pesticides[0].Name)
	assert.Equal(t, "weekly", list[0].Pesticides[1].Frequency)
}

func TestSaveDetection_Rejects(t *testing.T) {
	ctx := context.Background()
	svc, local := setup(t)

	noImage := detection(t, "blight", false)
	noImage.Image = nil
	_, err := svc.SaveDetection(ctx, noImage)
	assert.ErrorIs(t, err, domain.ErrNoFile)

	ghost := detection(t, "blight", false)
	ghost.Username = "ghost"
	_, err = svc.SaveDetection(ctx, ghost)
	assert.ErrorIs(t, err, domain.ErrFarmerNotFound)

	infinite := detection(t, "blight", false)
	infinite.Confidence = math.Inf(1)
	_, err = svc.SaveDetection(ctx, infinite)
	assert.ErrorIs(t, err, domain.ErrValidation)

	objects, err := local.ListObjects(Folder)
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)
	for _, req := range []domain.SaveDiseaseDetectionRequest{
		detection(t, "", true),
		detection(t, "blight", false),
		detection(t, "blight", false),
	} {
		_, err := svc.SaveDetection(ctx, req)
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(ctx, "ravi")
	require.NoError(t, err)
	assert.Equal(t, domain.DiseaseStats{
		TotalDetections: 3,
		HealthyCount:    1,
		DiseasedCount:   2,
		DiseaseTypes:    map[string]int{"blight": 2},
	}, stats)
}

func TestDeleteDetection(t *testing.T) {
	ctx := context.Background()
	svc, local := setup(t)
	saved, err := svc.SaveDetection(ctx, detection(t, "rust", false))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDetection(ctx, saved.ID.String()))
	objects, err := local.ListObjects(Folder)
	require.NoError(t, err)
	assert.Empty(t, objects)

	assert.ErrorIs(t, svc.DeleteDetection(ctx, saved.ID.String()), domain.ErrDetectionNotFound)
	assert.ErrorIs(t, svc.DeleteDetection(ctx, "bad-id"), domain.ErrInvalidID)
}

func TestParsePesticides(t *testing.T) {
	t.Run("json array", func(t *testing.T) {
		list, err := ParsePesticides(map[string][]string{
			"pesticides": {`[{"name":"Neem oil","type":"organic"},{"name":"Sulfur"}]`},
		})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Neem oil", list[0].Name)
		assert.Equal(t, "Sulfur", list[1].Name)
	})

	t.Run("flattened fields stop at first gap", func(t *testing.T) {
		list, err := ParsePesticides(map[string][]string{
			"pesticides[0][name]":   {"Mancozeb"},
			"pesticides[0][dosage]": {"2g/L"},
			"pesticides[1][target]": {"aphids"},
			"pesticides[3][name]":   {"ignored"},
		})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, entities.Pesticide{Name: "Mancozeb", Dosage: "2g/L"}, list[0])
		assert.Equal(t, "aphids", list[1].Target)
	})

	t.Run("none", func(t *testing.T) {
		list, err := ParsePesticides(map[string][]string{"crop": {"tomato"}})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParsePesticides(map[string][]string{"pesticides": {"[{"}})
		assert.ErrorIs(t, err, domain.ErrInvalidPesticides)
	})
}
