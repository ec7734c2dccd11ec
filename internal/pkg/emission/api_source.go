package emission

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/klimatkollen/klimatkollen/app/models"
)

const userAgent = "klimatkollen/1.0 (github.com/klimatkollen/klimatkollen)"

// maxResponseBytes caps how much of the emission service response is read
var maxResponseBytes int64 = 10 << 20

// APISource fetches municipalities from the emission data service over HTTP
type APISource struct {
	baseURL string
	client  *http.Client
}

func NewAPISource(baseURL string, timeout time.Duration) *APISource {
	return &APISource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// GetMunicipalities retrieves the collection from <baseURL>/municipalities
func (s *APISource) GetMunicipalities(ctx context.Context) ([]models.Municipality, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/municipalities", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snip := body
		if len(snip) > 200 {
			snip = snip[:200]
		}
		return nil, fmt.Errorf("emission service returned HTTP %d: %s", resp.StatusCode, string(snip))
	}

	var municipalities []models.Municipality
	if err := json.Unmarshal(body, &municipalities); err != nil {
		return nil, fmt.Errorf("JSON decode failed: %w", err)
	}
	return municipalities, nil
}
