package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Upload stores payload as an object under bucket/key and returns its public
// URL. Media rows then reference that URL instead of inlining the payload
// into the database record.
func (c *Client) Upload(ctx context.Context, bucket, key, mime string, payload []byte) (string, error) {
	if !c.hasSession() {
		return "", errAuthRequired()
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if mime == "" {
		mime = "application/octet-stream"
	}
	req.Header.Set("Content-Type", mime)
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.bearer())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &RemoteError{Reason: ReasonTransport, Message: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return "", statusError(resp.StatusCode, data)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, key), nil
}
