package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agrifusion/internal/api/handlers"
	"agrifusion/internal/api/presenters"
	"agrifusion/internal/api/routes"
	"agrifusion/internal/middleware"
	"agrifusion/internal/testutil"
	"agrifusion/internal/utils/storage"
	"agrifusion/pkg/crop"
	"agrifusion/pkg/disease"
	"agrifusion/pkg/farmer"
	"agrifusion/pkg/photo"
	"agrifusion/pkg/soil"
	"agrifusion/pkg/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const maxUpload = 1 << 20

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.NewDB(t)
	local, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:3000", maxUpload)
	require.NoError(t, err)

	farmerService := farmer.NewFarmerService(farmer.NewFarmerRepository(db), farmer.Config{
		AdminUsername: "admin",
		AdminPassword: "s3cret",
		BcryptCost:    bcrypt.MinCost,
	})
	cropService := crop.NewCropService("", time.Second)

	app := fiber.New(fiber.Config{
		BodyLimit:    maxUpload + 1<<20,
		ErrorHandler: presenters.ErrorHandler,
	})
	cfg := routes.Config{
		App:                app,
		FarmerHandler:      handlers.NewFarmerHandler(farmerService),
		SoilTestHandler:    handlers.NewSoilTestHandler(soil.NewSoilTestService(soil.NewSoilTestRepository(db), farmerService, cropService)),
		TransactionHandler: handlers.NewTransactionHandler(transaction.NewTransactionService(transaction.NewTransactionRepository(db), farmerService)),
		PhotoHandler:       handlers.NewPhotoHandler(photo.NewPhotoService(photo.NewPhotoRepository(db), farmerService, local, maxUpload)),
		DiseaseHandler:     handlers.NewDiseaseHandler(disease.NewDiseaseService(disease.NewDiseaseRepository(db), farmerService, local, maxUpload)),
		StageHandler:       handlers.NewStageHandler(),
		CropHandler:        handlers.NewCropHandler(cropService),
		Middleware:         middleware.NewMiddleware(),
	}
	cfg.Setup()
	app.Use(func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body io.Reader, contentType string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return res.StatusCode, env
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, envelope) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	return do(t, app, method, path, body, fiber.MIMEApplicationJSON)
}

func register(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	status, env := doJSON(t, app, http.MethodPost, "/register", map[string]interface{}{
		"username": username,
		"password": "harvest1",
		"soilDetails": map[string]interface{}{
			"N": "90", "P": 42, "K": 43, "temperature": 20.8, "humidity": 82, "ph": 6.5,
		},
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	var f struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &f))
	return f.ID
}

func TestAuthRoutes(t *testing.T) {
	app := newApp(t)
	register(t, app, "ravi")

	status, env := doJSON(t, app, http.MethodPost, "/register", map[string]string{"username": "ravi", "password": "harvest1"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, env = doJSON(t, app, http.MethodPost, "/login", map[string]string{"username": "ravi", "password": "harvest1"})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"role":"farmer","username":"ravi"}`, string(env.Data))

	status, _ = doJSON(t, app, http.MethodPost, "/login", map[string]string{"username": "ravi", "password": "wrong!!"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodPost, "/login", map[string]string{"username": "ghost", "password": "harvest1"})
	assert.Equal(t, http.StatusNotFound, status)

	status, env = doJSON(t, app, http.MethodPost, "/login", map[string]string{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"role":"admin","username":"admin"}`, string(env.Data))

	status, _ = do(t, app, http.MethodPost, "/login", bytes.NewReader([]byte("{")), fiber.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestFarmerRoutes(t *testing.T) {
	app := newApp(t)
	id := register(t, app, "ravi")

	status, env := doJSON(t, app, http.MethodGet, "/farmers", nil)
	require.Equal(t, http.StatusOK, status)
	var farmers []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &farmers))
	require.Len(t, farmers, 1)
	assert.NotContains(t, farmers[0], "passwordHash")

	status, env = doJSON(t, app, http.MethodPut, "/farmer/status/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"status":"inactive"`)

	status, env = doJSON(t, app, http.MethodPut, "/farmer/"+id, map[string]string{"name": "Ravi K"})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"name":"Ravi K"`)

	status, _ = doJSON(t, app, http.MethodPut, "/farmer/status/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/farmer/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodDelete, "/farmer/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNonFiniteNumbersRejected(t *testing.T) {
	app := newApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/register", map[string]interface{}{
		"username":    "ravi",
		"password":    "harvest1",
		"soilDetails": map[string]interface{}{"N": "Infinity"},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, env = doJSON(t, app, http.MethodGet, "/farmers", nil)
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.JSONEq(t, `[]`, string(env.Data))

	register(t, app, "ravi")

	status, _ = doJSON(t, app, http.MethodPost, "/soil-test", map[string]interface{}{
		"username": "ravi", "N": "NaN", "P": 1, "K": 1, "temperature": 1, "humidity": 1, "ph": 7,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	body, ct := testutil.MultipartBody(t, map[string]string{"username": "ravi", "isHealthy": "false", "confidence": "+Inf"}, "image", "leaf.png", testutil.PNG)
	status, _ = do(t, app, http.MethodPost, "/save-disease-detection", body, ct)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = doJSON(t, app, http.MethodGet, "/soil-tests/ravi", nil)
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.JSONEq(t, `[]`, string(mustField(t, env.Data, "testHistory")))

	status, env = doJSON(t, app, http.MethodGet, "/disease-detections/ravi", nil)
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestSoilTestRoutes(t *testing.T) {
	app := newApp(t)
	register(t, app, "ravi")

	status, env := doJSON(t, app, http.MethodGet, "/soil-tests/ravi", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(mustField(t, env.Data, "testHistory")))

	status, env = doJSON(t, app, http.MethodPost, "/soil-test", map[string]interface{}{
		"username": "ravi", "N": "80", "P": "40", "K": 41, "temperature": "25.5", "humidity": 70, "ph": "6.8",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	var saved struct {
		ID string  `json:"id"`
		N  float64 `json:"N"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	assert.Equal(t, 80.0, saved.N)

	status, _ = doJSON(t, app, http.MethodPost, "/soil-test", map[string]interface{}{"username": "ravi", "N": "lots"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodGet, "/soil-tests/ghost", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/soil-test/"+saved.ID, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodDelete, "/soil-test/"+saved.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTransactionRoutes(t *testing.T) {
	app := newApp(t)
	register(t, app, "ravi")

	for _, tx := range []map[string]interface{}{
		{"username": "ravi", "type": "income", "category": "sale", "amount": "100", "date": "2024-01-01"},
		{"username": "ravi", "type": "expense", "category": "seeds", "amount": 40, "date": "2024-01-02"},
		{"username": "ravi", "type": "income", "category": "sale", "amount": 25, "date": "2024-01-03"},
	} {
		status, env := doJSON(t, app, http.MethodPost, "/transaction", tx)
		require.Equal(t, http.StatusCreated, status, env.Error)
	}

	status, env := doJSON(t, app, http.MethodGet, "/transactions/summary/ravi", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"totalIncome":125,"totalExpense":40,"netProfit":85,"transactionCount":3}`, string(env.Data))

	status, env = doJSON(t, app, http.MethodGet, "/transactions/ravi", nil)
	require.Equal(t, http.StatusOK, status)
	var txs []struct {
		ID     string  `json:"id"`
		Amount float64 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &txs))
	require.Len(t, txs, 3)
	assert.Equal(t, 25.0, txs[0].Amount)

	req := httptest.NewRequest(http.MethodGet, "/transactions/export/ravi?format=csv", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get(fiber.HeaderContentDisposition), ".csv")

	status, _ = doJSON(t, app, http.MethodDelete, "/transaction/"+txs[0].ID, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodDelete, "/transaction/"+txs[0].ID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, app, http.MethodPost, "/transaction", map[string]interface{}{
		"username": "ghost", "type": "income", "category": "sale", "amount": 1,
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPhotoRoutes(t *testing.T) {
	app := newApp(t)
	register(t, app, "ravi")

	body, ct := testutil.MultipartBody(t, map[string]string{"username": "ravi", "caption": "notes"}, "photo", "notes.txt", []byte("plain text"))
	status, env := do(t, app, http.MethodPost, "/upload-photo", body, ct)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)

	body, ct = testutil.MultipartBody(t, map[string]string{"username": "ravi"}, "", "", nil)
	status, _ = do(t, app, http.MethodPost, "/upload-photo", body, ct)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = doJSON(t, app, http.MethodGet, "/photos/ravi", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))

	body, ct = testutil.MultipartBody(t, map[string]string{"username": "ravi", "caption": "field"}, "photo", "field.png", testutil.PNG)
	status, env = do(t, app, http.MethodPost, "/upload-photo", body, ct)
	require.Equal(t, http.StatusCreated, status, env.Error)
	var p struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Contains(t, p.URL, "/uploads/photos/")

	body, ct = testutil.MultipartBody(t, map[string]string{"username": "ghost"}, "photo", "field.png", testutil.PNG)
	status, _ = do(t, app, http.MethodPost, "/upload-photo", body, ct)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/photo/"+p.ID, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodDelete, "/photo/"+p.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDiseaseRoutes(t *testing.T) {
	app := newApp(t)
	register(t, app, "ravi")

	post := func(fields map[string]string) (int, envelope) {
		body, ct := testutil.MultipartBody(t, fields, "image", "leaf.png", testutil.PNG)
		return do(t, app, http.MethodPost, "/save-disease-detection", body, ct)
	}

	status, env := post(map[string]string{"username": "ravi", "crop": "tomato", "isHealthy": "true", "confidence": "0.97"})
	require.Equal(t, http.StatusCreated, status, env.Error)
	status, env = post(map[string]string{
		"username": "ravi", "detectedDisease": "blight", "isHealthy": "false", "confidence": "0.8",
		"pesticides[0][name]": "Mancozeb", "pesticides[0][dosage]": "2g/L",
		"pesticides[1][name]": "Copper oxychloride",
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	assert.Contains(t, string(env.Data), `"pesticides":[{"name":"Mancozeb"`)
	status, env = post(map[string]string{
		"username": "ravi", "detectedDisease": "blight", "isHealthy": "false",
		"pesticides": `[{"name":"Neem oil","type":"organic"}]`,
	})
	require.Equal(t, http.StatusCreated, status, env.Error)

	status, env = doJSON(t, app, http.MethodGet, "/disease-stats/ravi", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"totalDetections":3,"healthyCount":1,"diseasedCount":2,"diseaseTypes":{"blight":2}}`, string(env.Data))

	status, _ = post(map[string]string{"username": "ravi", "isHealthy": "maybe"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = doJSON(t, app, http.MethodGet, "/disease-detections/ravi", nil)
	require.Equal(t, http.StatusOK, status)
	var list []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)

	status, _ = doJSON(t, app, http.MethodDelete, "/disease-detection/"+list[0].ID, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodDelete, "/disease-detection/"+list[0].ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestStageAndMiscRoutes(t *testing.T) {
	app := newApp(t)

	status, env := doJSON(t, app, http.MethodGet, "/stages", nil)
	require.Equal(t, http.StatusOK, status)
	var stages []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &stages))
	assert.Len(t, stages, 8)

	status, env = doJSON(t, app, http.MethodGet, "/stages/storage", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, `"fertiliser.html"`, string(mustField(t, env.Data, "redirect")))

	status, _ = doJSON(t, app, http.MethodGet, "/stages/weeding", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = doJSON(t, app, http.MethodGet, "/stages/layout?width=300&height=300&elementWidth=60&elementHeight=60", nil)
	require.Equal(t, http.StatusOK, status)
	var pos []struct {
		Left float64 `json:"left"`
		Top  float64 `json:"top"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pos))
	require.Len(t, pos, 8)
	assert.InDelta(t, 150+150-30, pos[0].Left, 1e-9)

	status, env = doJSON(t, app, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", env.Message)

	status, env = doJSON(t, app, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)

	status, _ = doJSON(t, app, http.MethodPost, "/predict-crop", map[string]interface{}{"N": 1})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUploadBodyLimit(t *testing.T) {
	app := newApp(t)
	register(t, app, "ravi")

	big := append([]byte{}, testutil.PNG...)
	big = append(big, make([]byte, maxUpload+2<<20)...)
	body, ct := testutil.MultipartBody(t, map[string]string{"username": "ravi"}, "photo", "huge.png", big)
	status, env := do(t, app, http.MethodPost, "/upload-photo", body, ct)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.False(t, env.Success)
}

func mustField(t *testing.T, data json.RawMessage, key string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m), fmt.Sprintf("data: %s", data))
	return m[key]
}
