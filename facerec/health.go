package facerec

import "context"

// Health probes the backend liveness endpoint. Failures are informational;
// callers log rather than abort.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.newRequest(ctx, "GET", "/health", nil)
	if err != nil {
		return err
	}
	_, doErr := c.do(req, nil)
	return doErr
}
