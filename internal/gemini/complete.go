package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Classified upstream contract violations, in the order they are checked.
// The HTTP boundary maps all three to a 502-class condition.
var (
	ErrMalformedResponse = errors.New("gemini: response body is not valid JSON")
	ErrNoCandidates      = errors.New("gemini: no response candidates")
	ErrIncompleteContent = errors.New("gemini: candidate has no content parts")
)

// Placeholder is returned when the first content part exists but carries no
// text field. That shape is odd but not fatal upstream, so it is not an error.
const Placeholder = "No text in the first part."

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []responseCandidate `json:"candidates"`
}

type responseCandidate struct {
	Content responseContent `json:"content"`
}

type responseContent struct {
	Parts []responsePart `json:"parts"`
}

type responsePart struct {
	// Pointer so an absent text field is distinguishable from an empty one.
	Text *string `json:"text"`
}

// Complete sends prompt as the sole content of a single-turn request and
// returns the text of the first part of the first candidate. One blocking
// request, no retry, no streaming.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []requestContent{{Parts: []requestPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.key))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	// The body is decoded regardless of status code: an upstream error
	// envelope decodes fine and falls out as ErrNoCandidates below.
	var parsed generateResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	parts := parsed.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", ErrIncompleteContent
	}
	if parts[0].Text == nil {
		return Placeholder, nil
	}
	return *parts[0].Text, nil
}
