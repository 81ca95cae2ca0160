package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/freelanceshield/api/internal/pdf"
	"github.com/freelanceshield/api/internal/pkg/errors"
	"github.com/freelanceshield/api/internal/pkg/logger"
)

const maxFileSize = 10 * 1024 * 1024

// pdfservice is the standalone text-extraction service. The main API
// delegates to it when PDF_SERVICE_URL is set, which keeps heavy PDF
// parsing out of the request-serving process.
func main() {
	log := logger.New(logger.Config{
		Level:  envOr("LOG_LEVEL", "info"),
		Format: envOr("LOG_FORMAT", "json"),
	})

	if envOr("ENVIRONMENT", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	extractor := pdf.NewLocalExtractor()

	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = maxFileSize

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/extract", func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "No file provided."})
			return
		}

		if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Only PDF files are supported."})
			return
		}
		if header.Size > maxFileSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"detail": "File too large. Maximum size is 10MB."})
			return
		}

		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Failed to read uploaded file."})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxFileSize+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Failed to read uploaded file."})
			return
		}
		if len(data) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Uploaded file is empty."})
			return
		}
		if len(data) > maxFileSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"detail": "File too large. Maximum size is 10MB."})
			return
		}

		result, err := extractor.Extract(c.Request.Context(), data)
		if err != nil {
			log.WithFields(map[string]interface{}{
				"file_name": header.Filename,
				"size":      header.Size,
			}).WithError(err).Warn("Extraction failed")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": gin.H{
				"error":   extractionErrorKey(err),
				"message": userMessage(err),
			}})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"text":       result.Text,
			"page_count": result.PageCount,
			"char_count": result.CharCount,
		})
	})

	port, _ := strconv.Atoi(envOr("PDF_SERVICE_PORT", "8081"))
	addr := fmt.Sprintf("%s:%d", envOr("PDF_SERVICE_HOST", "0.0.0.0"), port)
	log.Infof("PDF service listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("PDF service failed: %v", err)
	}
}

func extractionErrorKey(err error) string {
	switch userMessage(err) {
	case pdf.MsgNoText:
		return "no_text_extractable"
	case pdf.MsgEncrypted:
		return "encrypted_pdf"
	default:
		return "extraction_failed"
	}
}

func userMessage(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.Message
	}
	return "Failed to extract text from PDF."
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
