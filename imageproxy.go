package main

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Avatar relay: Google profile images break when hot-linked directly because
// the browser attaches referrer/cookie context; fetching server-side avoids
// that without the client handling any auth headers.

// @Summary Proxy a profile image
// @Description Fetch a Google-hosted avatar server-side and relay it with caching headers. Only googleusercontent.com URLs are allowed.
// @Tags images
// @Produce octet-stream
// @Param url query string true "Image URL to proxy"
// @Success 200 {file} binary "Image bytes with upstream content type"
// @Failure 400 {string} string "Missing or invalid image URL"
// @Failure 500 {string} string "Internal server error"
// @Router /api/proxy-image [get]
func proxyImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		imageURL := c.Query("url")
		if imageURL == "" {
			c.String(http.StatusBadRequest, "Missing image URL")
			return
		}

		// Coarse allowlist: substring match, not a full host parse
		if !strings.Contains(imageURL, "googleusercontent.com") {
			c.String(http.StatusBadRequest, "Invalid image source")
			return
		}

		req, err := http.NewRequestWithContext(c.Request.Context(), "GET", imageURL, nil)
		if err != nil {
			log.Printf("Image proxy error: %v", err)
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Investory-ImageProxy/1.0)")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Printf("Image proxy error: %v", err)
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			c.String(resp.StatusCode, "Failed to fetch image")
			return
		}

		imageBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			log.Printf("Image proxy error: %v", err)
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}

		contentType := resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}

		c.Header("Cache-Control", "public, max-age=86400")
		c.Header("Access-Control-Allow-Origin", "*")
		c.Data(http.StatusOK, contentType, imageBytes)
	}
}
