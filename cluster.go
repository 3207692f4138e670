package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Classification proxy: forwards an uploaded transactions CSV to the
// clustering service and relays its verdict.

// @Summary Analyze spending CSV
// @Description Upload a CSV of transactions (columns: timestamp, amount, category — Survival, Growth, Joy, Impulse) and get back the spending persona assigned by the clustering service. Only the .csv extension is checked here; row-level validation happens upstream.
// @Tags cluster
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file to analyze"
// @Success 200 {object} ClusterResult "Cluster index and persona label"
// @Failure 400 {object} map[string]interface{} "Missing file or wrong extension"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/cluster [post]
func clusterCSV(clusteringAPIURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "No file provided"})
			return
		}
		defer file.Close()

		if !strings.HasSuffix(header.Filename, ".csv") {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Please upload a CSV file"})
			return
		}

		// Re-wrap the upload into a fresh multipart body under the same
		// field name before forwarding.
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", header.Filename)
		if err == nil {
			_, err = io.Copy(part, file)
		}
		if err == nil {
			err = writer.Close()
		}
		if err != nil {
			log.Printf("Error building clustering request body: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}

		req, err := http.NewRequestWithContext(c.Request.Context(), "POST", clusteringAPIURL+"/predict_csv", &body)
		if err != nil {
			log.Printf("Error creating clustering request: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Printf("Clustering API error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			var upstreamErr struct {
				Detail string `json:"detail"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&upstreamErr); err != nil {
				log.Printf("Error decoding clustering error body: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
				return
			}
			if upstreamErr.Detail == "" {
				upstreamErr.Detail = "Failed to process CSV file"
			}
			c.JSON(resp.StatusCode, gin.H{"detail": upstreamErr.Detail})
			return
		}

		var result ClusterResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			log.Printf("Error decoding clustering response: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
