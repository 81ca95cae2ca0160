package pdf

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/freelanceshield/api/internal/pkg/errors"
)

// RemoteExtractor delegates extraction to the standalone pdfservice.
type RemoteExtractor struct {
	baseURL string
	client  *http.Client
}

// NewRemoteExtractor creates a client for the extraction service
func NewRemoteExtractor(baseURL string) *RemoteExtractor {
	return &RemoteExtractor{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type remoteErrorDetail struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type remoteErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type remoteExtractResponse struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
	CharCount int    `json:"char_count"`
}

// Extract posts the file to the extraction service and maps its errors
// onto the local taxonomy.
func (e *RemoteExtractor) Extract(ctx context.Context, data []byte) (*ExtractResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "upload.pdf")
	if err != nil {
		return nil, errors.Internal("Failed to build extraction request", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, errors.Internal("Failed to build extraction request", err)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Internal("Failed to build extraction request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/extract", &body)
	if err != nil {
		return nil, errors.Internal("Failed to build extraction request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, errors.Upstream("PDF extraction service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp remoteErrorResponse
		message := "Failed to extract text from PDF"
		if json.NewDecoder(resp.Body).Decode(&errResp) == nil && len(errResp.Detail) > 0 {
			var detail remoteErrorDetail
			if json.Unmarshal(errResp.Detail, &detail) == nil && detail.Message != "" {
				message = detail.Message
			} else {
				var plain string
				if json.Unmarshal(errResp.Detail, &plain) == nil && plain != "" {
					message = plain
				}
			}
		}

		switch resp.StatusCode {
		case http.StatusBadRequest:
			return nil, errors.BadRequest(message)
		case http.StatusRequestEntityTooLarge:
			return nil, errors.PayloadTooLarge(message)
		case http.StatusUnprocessableEntity:
			return nil, errors.Unprocessable(message)
		}
		return nil, errors.Upstream(message, nil)
	}

	var result remoteExtractResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Upstream("Invalid extraction service response", err)
	}

	return &ExtractResult{
		Text:      result.Text,
		PageCount: result.PageCount,
		CharCount: result.CharCount,
	}, nil
}
