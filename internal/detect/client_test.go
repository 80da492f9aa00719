package detect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_ParsesPredictions(t *testing.T) {
	var gotKey, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{
			"predictions": [
				{"x": 200, "y": 300, "width": 100, "height": 160, "confidence": 0.91, "class": "wine-label"},
				{"x": 50, "y": 60, "width": 20, "height": 20, "confidence": 0.42, "class": "wine-label"}
			],
			"image": {"width": 640, "height": 480}
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "wine-label/1", APIKey: "secret"}, srv.Client(), nil)
	resp, err := c.Detect(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "secret", gotKey)
	assert.Contains(t, gotContentType, "multipart/form-data")
	require.Len(t, resp.Predictions, 2)
	require.NotNil(t, resp.Image)
	assert.Equal(t, 640, resp.Image.Width)
}

func TestDetect_Unconfigured(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://unused", Model: "m/1"}, nil, nil)
	assert.False(t, c.IsConfigured())

	_, err := c.Detect(context.Background(), []byte("x"))
	assert.ErrorContains(t, err, "not configured")
}

func TestDetect_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "m/1", APIKey: "k"}, srv.Client(), nil)
	_, err := c.Detect(context.Background(), []byte("x"))
	assert.ErrorContains(t, err, "non-2xx")
}

func TestDetect_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "m/1", APIKey: "k"}, srv.Client(), nil)
	_, err := c.Detect(context.Background(), []byte("x"))
	assert.ErrorContains(t, err, "empty response body")
}

func TestBestPrediction(t *testing.T) {
	resp := &LabelDetectionResponse{Predictions: []Prediction{
		{Confidence: 0.55, Class: "a"},
		{Confidence: 0.93, Class: "b"},
		{Confidence: 0.49, Class: "c"}, // below threshold
	}}
	best := BestPrediction(resp)
	require.NotNil(t, best)
	assert.Equal(t, "b", best.Class)

	assert.Nil(t, BestPrediction(&LabelDetectionResponse{Predictions: []Prediction{{Confidence: 0.4}}}))
	assert.Nil(t, BestPrediction(nil))
}

func TestPredictionBoundingBox(t *testing.T) {
	p := Prediction{X: 200, Y: 300, Width: 100, Height: 160}
	b := p.BoundingBox()
	assert.InDelta(t, 150, b.X1, 1e-6)
	assert.InDelta(t, 220, b.Y1, 1e-6)
	assert.InDelta(t, 250, b.X2, 1e-6)
	assert.InDelta(t, 380, b.Y2, 1e-6)
	assert.True(t, b.IsValid())
}

func TestBoundingBoxClamp(t *testing.T) {
	b := BoundingBox{X1: -10, Y1: 5, X2: 700, Y2: 500}.ClampToImage(640, 480)
	assert.Equal(t, BoundingBox{X1: 0, Y1: 5, X2: 640, Y2: 480}, b)

	degenerate := BoundingBox{X1: 10, Y1: 10, X2: 10, Y2: 20}
	assert.False(t, degenerate.IsValid())
}
