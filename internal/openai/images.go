package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ImageRequest describes one call to the image generation endpoint.
type ImageRequest struct {
	Model   string
	Prompt  string
	Size    string
	Quality string
	N       int
}

// GenerateImages requests N images and returns the decoded PNG payloads.
// Items the API returns without image data are skipped; a response with no
// usable items at all is an error.
func (c *Client) GenerateImages(ctx context.Context, req ImageRequest) ([][]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	payload := map[string]interface{}{
		"model":   req.Model,
		"prompt":  req.Prompt,
		"size":    req.Size,
		"quality": req.Quality,
		"n":       req.N,
	}

	body, err := c.post(ctx, "/images/generations", payload)
	if err != nil {
		return nil, err
	}

	var out struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode image response: %w", err)
	}
	if len(out.Data) == 0 {
		return nil, errors.New("empty response data")
	}

	var images [][]byte
	for _, item := range out.Data {
		if item.B64JSON == "" {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(item.B64JSON)
		if err != nil {
			continue
		}
		images = append(images, raw)
	}
	if len(images) == 0 {
		return nil, errors.New("response contained no image data")
	}
	return images, nil
}
