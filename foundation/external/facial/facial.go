// Package facial is the HTTP client of the facial expression classifier
// service. The classifier owns the webcam capture and the model; this client
// only fetches its latest distribution.
package facial

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

const (
	apiTimeout = 3
)

func Classify(apiEndpoint string, apiKey string) (Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout*time.Second)
	defer cancel()

	req, err := http.NewRequest(http.MethodGet, apiEndpoint, nil)
	if err != nil {
		return Result{}, err
	}

	req = req.WithContext(ctx)
	req.Header.Add("api-key", apiKey)

	client := http.Client{}

	resp, err := client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusInternalServerError {
		return Result{}, errors.New("internal server error 500")
	}

	bytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, errors.New(string(bytes))
	}

	var r Result
	if err := json.Unmarshal(bytes, &r); err != nil {
		return Result{}, err
	}

	return r, nil
}
