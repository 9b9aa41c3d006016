package facerec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// RequestTimeout bounds every call to the backend, uploads included
const RequestTimeout = 30 * time.Second

const apiPrefix = "/api/v1"

// DefaultMaxImageBytes caps uploaded image size unless overridden on the client
const DefaultMaxImageBytes = 10 << 20

// Client wraps HTTP access to the face recognition backend. All methods
// return *APIError.
type Client struct {
	// MaxImageBytes is the upload size cap applied during validation
	MaxImageBytes int64

	baseURL string
	token   string
	httpc   *http.Client
}

// New creates a client for the backend at baseURL. token is attached as a
// bearer token when non-empty.
func New(baseURL, token string) *Client {
	return &Client{
		MaxImageBytes: DefaultMaxImageBytes,
		baseURL:       strings.TrimRight(baseURL, "/"),
		token:         token,
		httpc:         &http.Client{Timeout: RequestTimeout},
	}
}

// ListMeta carries the pagination fields of an enveloped list response
type ListMeta struct {
	Count  int64 `json:"count"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// envelope is the optional `{data: T, count?, limit?, offset?}` wrapper the
// backend sometimes applies; bare payloads are equally valid.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Count  *int64          `json:"count"`
	Limit  *int            `json:"limit"`
	Offset *int            `json:"offset"`
}

// decodeEnvelope normalizes both response shapes into out. It is the single
// place envelope detection happens; accessors never inspect envelopes
// themselves.
func decodeEnvelope(body []byte, out interface{}) (*ListMeta, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, unknownError(fmt.Errorf("malformed enveloped response: %w", err))
		}
		meta := &ListMeta{}
		if env.Count != nil {
			meta.Count = *env.Count
		}
		if env.Limit != nil {
			meta.Limit = *env.Limit
		}
		if env.Offset != nil {
			meta.Offset = *env.Offset
		}
		return meta, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return nil, unknownError(fmt.Errorf("malformed response: %w", err))
	}
	return nil, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &APIError{Kind: KindUnknown, Message: "failed to build request: " + err.Error()}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// do executes req and decodes the response into out (when out is non-nil),
// returning list metadata for enveloped list payloads
func (c *Client) do(req *http.Request, out interface{}) (*ListMeta, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		// no response received at all
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, statusError(resp.StatusCode, body)
	}

	if out == nil {
		return nil, nil
	}
	return decodeEnvelope(body, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) (*ListMeta, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return unknownError(err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	_, doErr := c.do(req, out)
	return doErr
}

// multipartField is one text field of a multipart request
type multipartField struct {
	name  string
	value string
}

func (c *Client) sendMultipart(ctx context.Context, method, path string, fields []multipartField, files map[string][]ImageFile, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return unknownError(err)
		}
	}
	for field, imgs := range files {
		for _, img := range imgs {
			part, err := mw.CreateFormFile(field, img.Name)
			if err != nil {
				return unknownError(err)
			}
			if _, err := io.Copy(part, img.Reader); err != nil {
				return unknownError(err)
			}
		}
	}
	if err := mw.Close(); err != nil {
		return unknownError(err)
	}

	req, err := c.newRequest(ctx, method, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, doErr := c.do(req, out)
	return doErr
}
