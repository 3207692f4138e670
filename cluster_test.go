package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `timestamp,amount,category
2025-01-10T12:00:00,250,Survival
2025-01-11T21:30:00,899,Impulse
2025-01-12T09:15:00,400,Joy`

// clusterTestRouter wires the cluster route against a mock clustering service
func clusterTestRouter(upstreamURL string) *gin.Engine {
	cfg := newTestConfig()
	cfg.ClusteringAPIURL = upstreamURL
	return setupRouter(cfg, newFakeUserStore())
}

func TestClusterCSV(t *testing.T) {
	t.Run("no file returns 400", func(t *testing.T) {
		router := clusterTestRouter("http://localhost:0")

		w := makeRequest(router, "POST", "/api/cluster", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, parseJSONResponse(w, &response))
		assert.Equal(t, "No file provided", response["detail"])
	})

	t.Run("non-csv extension returns 400", func(t *testing.T) {
		router := clusterTestRouter("http://localhost:0")

		w := makeMultipartRequest(router, "/api/cluster", "file", "report.txt", []byte("not a csv"))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, parseJSONResponse(w, &response))
		assert.Equal(t, "Please upload a CSV file", response["detail"])
	})

	t.Run("forwards the file and relays the persona", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/predict_csv", r.URL.Path)

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "transactions.csv", header.Filename)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"cluster": 1, "persona": "Experience Seeker"}`))
		}))
		defer upstream.Close()

		router := clusterTestRouter(upstream.URL)
		w := makeMultipartRequest(router, "/api/cluster", "file", "transactions.csv", []byte(sampleCSV))

		assert.Equal(t, http.StatusOK, w.Code)

		var result ClusterResult
		require.NoError(t, parseJSONResponse(w, &result))
		assert.Equal(t, 1, result.Cluster)
		assert.Equal(t, "Experience Seeker", result.Persona)
	})

	t.Run("relays upstream error status and detail", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"detail": "model unavailable"}`))
		}))
		defer upstream.Close()

		router := clusterTestRouter(upstream.URL)
		w := makeMultipartRequest(router, "/api/cluster", "file", "transactions.csv", []byte(sampleCSV))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response map[string]interface{}
		require.NoError(t, parseJSONResponse(w, &response))
		assert.Equal(t, "model unavailable", response["detail"])
	})

	t.Run("upstream error without detail gets the generic message", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{}`))
		}))
		defer upstream.Close()

		router := clusterTestRouter(upstream.URL)
		w := makeMultipartRequest(router, "/api/cluster", "file", "transactions.csv", []byte(sampleCSV))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		require.NoError(t, parseJSONResponse(w, &response))
		assert.Equal(t, "Failed to process CSV file", response["detail"])
	})

	t.Run("non-JSON upstream error becomes 500", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>gateway error</html>"))
		}))
		defer upstream.Close()

		router := clusterTestRouter(upstream.URL)
		w := makeMultipartRequest(router, "/api/cluster", "file", "transactions.csv", []byte(sampleCSV))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		require.NoError(t, parseJSONResponse(w, &response))
		assert.Equal(t, "Internal server error", response["detail"])
	})

	t.Run("invalid success body becomes 500", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer upstream.Close()

		router := clusterTestRouter(upstream.URL)
		w := makeMultipartRequest(router, "/api/cluster", "file", "transactions.csv", []byte(sampleCSV))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("unreachable upstream becomes 500", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		upstream.Close()

		router := clusterTestRouter(upstream.URL)
		w := makeMultipartRequest(router, "/api/cluster", "file", "transactions.csv", []byte(sampleCSV))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		require.NoError(t, parseJSONResponse(w, &response))
		assert.Equal(t, "Internal server error", response["detail"])
	})
}
