package crop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agrifusion/domain"
	"agrifusion/internal/utils"

	"github.com/tidwall/gjson"
)

type (
	Features struct {
		N           float64 `json:"N"`
		P           float64 `json:"P"`
		K           float64 `json:"K"`
		Temperature float64 `json:"temperature"`
		Humidity    float64 `json:"humidity"`
		Ph          float64 `json:"ph"`
		Rainfall    float64 `json:"rainfall"`
	}

	CropService interface {
		Enabled() bool
		Predict(ctx context.Context, f Features) (string, error)
		PredictCrop(ctx context.Context, req domain.PredictCropRequest) (domain.PredictCropResponse, error)
	}

	cropService struct {
		predictURL string
		client     *http.Client
	}
)

// NewCropService talks to the model's POST /predict endpoint under baseURL.
// An empty baseURL yields a disabled service.
func NewCropService(baseURL string, timeout time.Duration) CropService {
	predictURL := ""
	if baseURL != "" {
		predictURL = strings.TrimRight(baseURL, "/") + "/predict"
	}
	return &cropService{
		predictURL: predictURL,
		client:     &http.Client{Timeout: timeout},
	}
}

func (s *cropService) Enabled() bool {
	return s.predictURL != ""
}

func (s *cropService) PredictCrop(ctx context.Context, req domain.PredictCropRequest) (domain.PredictCropResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return domain.PredictCropResponse{}, err
	}
	prediction, err := s.Predict(ctx, Features{
		N:           req.N.Float64(),
		P:           req.P.Float64(),
		K:           req.K.Float64(),
		Temperature: req.Temperature.Float64(),
		Humidity:    req.Humidity.Float64(),
		Ph:          req.Ph.Float64(),
		Rainfall:    req.Rainfall.Float64(),
	})
	if err != nil {
		return domain.PredictCropResponse{}, err
	}
	return domain.PredictCropResponse{Prediction: prediction}, nil
}

func (s *cropService) Predict(ctx context.Context, f Features) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("%w: CROP_MODEL_URL not configured", domain.ErrCropModelUnavailable)
	}

	payload, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.predictURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCropModelUnavailable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrCropModelUnavailable, err)
	}
	if res.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "error").String()
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrCropModelUnavailable, res.StatusCode, msg)
	}

	prediction := gjson.GetBytes(body, "prediction")
	if !prediction.Exists() || prediction.String() == "" {
		return "", fmt.Errorf("%w: response has no prediction", domain.ErrCropModelUnavailable)
	}
	return prediction.String(), nil
}
