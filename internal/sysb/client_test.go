package sysb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlen/vinkallaren/constants"
)

func intp(v int) *int { return &v }

func TestSearch(t *testing.T) {
	var gotPath, gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"products": [
				{"productId": "7612201", "productName": "Barolo Riserva", "producerName": "Marchesi di Barolo", "vintage": 2018, "country": "Italien"},
				{"productId": "7612302", "productName": "Barbera d'Alba", "producerName": "Conterno", "vintage": 2020}
			],
			"totalCount": 2
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"}, srv.Client(), nil)
	resp, err := c.Search(context.Background(), "barolo", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "/products/search", gotPath)
	assert.Equal(t, "barolo", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, 2, resp.TotalCount)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "Barolo Riserva", resp.Products[0].ProductName)
	require.NotNil(t, resp.Products[0].Vintage)
	assert.Equal(t, 2018, *resp.Products[0].Vintage)
}

func TestSearch_Unconfigured(t *testing.T) {
	c := NewClient(Config{}, nil, nil)
	_, err := c.Search(context.Background(), "barolo", 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestSearch_EmptyQuery(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil, nil)
	_, err := c.Search(context.Background(), "   ", 1, 10)
	assert.Error(t, err)
}

func TestSearch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "k"}, srv.Client(), nil)
	_, err := c.Search(context.Background(), "barolo", 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestWineTypeFor(t *testing.T) {
	strp := func(s string) *string { return &s }

	wt, ok := WineTypeFor(Product{CategoryLevel2: strp("Rött vin")})
	require.True(t, ok)
	assert.Equal(t, constants.Red, wt)

	wt, ok = WineTypeFor(Product{CategoryLevel2: strp("Vin"), CategoryLevel3: strp("Mousserande vin")})
	require.True(t, ok)
	assert.Equal(t, constants.Sparkling, wt)

	wt, ok = WineTypeFor(Product{CategoryLevel1: strp("Öl")})
	assert.False(t, ok)
	assert.Equal(t, constants.Unknown, wt)
}

func TestBestMatch(t *testing.T) {
	resp := &SearchResponse{
		Products: []Product{
			{ProductID: "1", ProductName: "Barbera d'Alba", ProducerName: "Conterno", Vintage: intp(2020)},
			{ProductID: "2", ProductName: "Barolo Riserva", ProducerName: "Marchesi di Barolo", Vintage: intp(2018)},
		},
	}

	got := BestMatch(resp, "Barolo Riserva", "Marchesi", intp(2018))
	require.NotNil(t, got)
	assert.Equal(t, "2", got.ProductID)
}

func TestBestMatch_NoOverlap(t *testing.T) {
	resp := &SearchResponse{
		Products: []Product{
			{ProductID: "1", ProductName: "Barbera d'Alba", ProducerName: "Conterno"},
		},
	}

	assert.Nil(t, BestMatch(resp, "Riesling", "Dr. Loosen", nil))
	assert.Nil(t, BestMatch(nil, "x", "y", nil))
}
