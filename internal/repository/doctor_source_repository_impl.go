package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"

	domainRepo "doctor-directory/internal/domain/repository"
)

// maxPayloadBytes bounds the upstream body; the directory is a small static file.
const maxPayloadBytes = 10 << 20

type doctorSourceRepository struct {
	client    *http.Client
	sourceURL string
}

func NewDoctorSourceRepository(client *http.Client, sourceURL string) domainRepo.DoctorSourceRepository {
	return &doctorSourceRepository{
		client:    client,
		sourceURL: sourceURL,
	}
}

func (r *doctorSourceRepository) FetchAll(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.sourceURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("get %s: unexpected status %d", r.sourceURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
