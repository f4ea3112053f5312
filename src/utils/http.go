package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/crypto-chatbot/src/models"
)

// HTTPError carries the status code of a non-2xx response so callers
// can distinguish a 404 from other failures.
type HTTPError struct {
	StatusCode int
	Msg        string
}

func (e *HTTPError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Msg)
	}

	return fmt.Sprintf("http status %d", e.StatusCode)
}

// Get performs a single GET request with a bounded timeout. No retry is
// attempted; a failed call is reported back to the caller.
func Get(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	client := http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("Get: failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")

	requestID := uuid.New()
	log.Debugf("[%s] GET %s", requestID, req.URL.String())

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Get: query failed: %w", err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("Get: failed to read response body: %w", err)
	}

	if res.StatusCode >= 400 {
		var errDTO models.ErrorDTO
		if jsonErr := json.Unmarshal(body, &errDTO); jsonErr == nil && errDTO.Msg != "" {
			log.Debugf("[%s] status %d: %s", requestID, res.StatusCode, errDTO.Msg)
			return nil, &HTTPError{StatusCode: res.StatusCode, Msg: errDTO.Msg}
		}

		log.Debugf("[%s] status %d", requestID, res.StatusCode)
		return nil, &HTTPError{StatusCode: res.StatusCode}
	}

	return body, nil
}
