package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Uploader sends an image to the external host and returns its public URL.
// Handlers depend on this interface only; the host is an external collaborator.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename string) (string, error)
}

// HostClient uploads via a single multipart POST, the contract shared by the
// common image hosts (key + optional folder + file part, JSON reply with the
// hosted URL).
type HostClient struct {
	client *http.Client
	url    string
	key    string
	folder string
}

func NewHostClient(url, key, folder string) *HostClient {
	return &HostClient{
		client: &http.Client{Timeout: 30 * time.Second},
		url:    url,
		key:    key,
		folder: folder,
	}
}

func (h *HostClient) Upload(ctx context.Context, r io.Reader, filename string) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		defer mw.Close()
		if err := mw.WriteField("key", h.key); err != nil {
			pw.CloseWithError(err)
			return
		}
		if h.folder != "" {
			if err := mw.WriteField("folder", h.folder); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", fmt.Errorf("image host returned %d: %s", res.StatusCode, body)
	}

	var payload struct {
		URL  string `json:"url"`
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if payload.Data.URL != "" {
		return payload.Data.URL, nil
	}
	if payload.URL == "" {
		return "", fmt.Errorf("image host response carried no url")
	}
	return payload.URL, nil
}
