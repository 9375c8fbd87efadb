package vendorapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBySourceCodeSendsFixedQuery(t *testing.T) {
	var got query
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"sku":"ABC123","title":"NB HP 8GB","group":{"name":"HP"},"price":{"list":850.5}},
			{"sku":"DEF456","title":"MONITOR LG 24"}
		]`))
	}))
	defer ts.Close()

	items, err := NewClient(ts.URL).FetchBySourceCode(context.Background(), "NOTEBOOKS")
	require.NoError(t, err)

	assert.Equal(t, "NOTEBOOKS", got.SourceCode)
	assert.Equal(t, "DA", got.Order)
	assert.Equal(t, "T", got.StockFilter)
	assert.Equal(t, 500, got.Limit)

	require.Len(t, items, 2)
	assert.Equal(t, "ABC123", items[0].SKU)
	assert.Equal(t, "HP", items[0].BrandHint())
	assert.Equal(t, "850.5", items[0].ListPrice().String())

	// optional fields may be absent entirely
	assert.Equal(t, "", items[1].BrandHint())
	assert.True(t, items[1].ListPrice().IsZero())
}

func TestFetchBySourceCodeNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).FetchBySourceCode(context.Background(), "MONITORES")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vendor status 502")
}

func TestFetchBySourceCodeMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object instead of array", `{"error":"rate limited"}`},
		{"not json", `<html>maintenance</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := NewClient(ts.URL).FetchBySourceCode(context.Background(), "IMPRESORAS")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "malformed response")
		})
	}
}
