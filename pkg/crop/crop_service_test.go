package crop

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agrifusion/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flex(v float64) *domain.FlexFloat {
	f := domain.FlexFloat(v)
	return &f
}

func TestPredict(t *testing.T) {
	var got map[string]float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction":"rice"}`))
	}))
	defer srv.Close()

	svc := NewCropService(srv.URL+"/", time.Second)
	res, err := svc.PredictCrop(context.Background(), domain.PredictCropRequest{
		N: flex(90), P: flex(42), K: flex(43), Temperature: flex(20.8),
		Humidity: flex(82), Ph: flex(6.5), Rainfall: flex(202.9),
	})
	require.NoError(t, err)
	assert.Equal(t, "rice", res.Prediction)
	assert.Equal(t, 202.9, got["rainfall"])
	assert.Equal(t, 90.0, got["N"])
}

func TestPredict_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model not loaded"}`))
	}))
	defer srv.Close()

	_, err := NewCropService(srv.URL, time.Second).Predict(context.Background(), Features{})
	assert.ErrorIs(t, err, domain.ErrCropModelUnavailable)
	assert.ErrorContains(t, err, "model not loaded")

	disabled := NewCropService("", time.Second)
	assert.False(t, disabled.Enabled())
	_, err = disabled.Predict(context.Background(), Features{})
	assert.ErrorIs(t, err, domain.ErrCropModelUnavailable)
}

func TestPredictCrop_MissingField(t *testing.T) {
	svc := NewCropService("http://127.0.0.1:1", time.Second)
	_, err := svc.PredictCrop(context.Background(), domain.PredictCropRequest{N: flex(1)})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
