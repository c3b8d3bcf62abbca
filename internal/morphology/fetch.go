// Package morphology downloads and parses the quran-morphology corpus,
// extracting the Arabic root annotated on each word coordinate.
package morphology

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetch retrieves the full morphology payload from url. The payload is
// returned as a single string; any transport error or non-2xx status
// is fatal to the caller. There is no retry.
func Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch morphology: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch morphology: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read morphology body: %w", err)
	}
	return string(body), nil
}
