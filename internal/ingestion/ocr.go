package ingestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ocr.go -package=mocks contexta/internal/ingestion OCRClient

const (
	// feasibleMinLength is the minimum normalized text length for an
	// OCR result to count as readable.
	feasibleMinLength = 80
	// feasibleMinAlphaRatio is the minimum share of letters in a
	// feasible OCR result.
	feasibleMinAlphaRatio = 0.75

	lineMinLength     = 8
	lineMinAlphaRatio = 0.6
)

// OCRClient recognizes text in an image file.
type OCRClient interface {
	RecognizeFile(ctx context.Context, path string) (string, error)
}

// HTTPOCRClient calls an external OCR service that accepts a multipart
// image upload and responds with {"text": "..."}.
type HTTPOCRClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPOCRClient creates an OCR client for the service at baseURL.
func NewHTTPOCRClient(baseURL string, timeout time.Duration) *HTTPOCRClient {
	return &HTTPOCRClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type ocrResponse struct {
	Text string `json:"text"`
}

// RecognizeFile uploads the image at path and returns the raw
// recognized text.
func (c *HTTPOCRClient) RecognizeFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ocr", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create OCR request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("OCR request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OCR service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed ocrResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode OCR response: %w", err)
	}
	return parsed.Text, nil
}

var (
	ocrJunkChars  = regexp.MustCompile(`[^\w\s.,:;!?()-]`)
	ocrWhitespace = regexp.MustCompile(`\s{2,}`)
)

// NormalizeOCRText cleans raw OCR output: uppercases, strips malformed
// characters, collapses whitespace, and drops lines that are too short
// or carry too few letters to be real text.
func NormalizeOCRText(text string) string {
	text = strings.ToUpper(text)
	text = ocrJunkChars.ReplaceAllString(text, "")
	text = ocrWhitespace.ReplaceAllString(text, " ")

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= lineMinLength {
			continue
		}
		if alphaRatio(line) <= lineMinAlphaRatio {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n")
}

// OCRFeasible reports whether normalized OCR text is readable enough
// to ingest. Short or symbol-heavy output fails the gate.
func OCRFeasible(text string) bool {
	if len(text) < feasibleMinLength {
		return false
	}
	return alphaRatio(text) >= feasibleMinAlphaRatio
}

func alphaRatio(s string) float64 {
	letters, total := 0, 0
	for _, r := range s {
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}
