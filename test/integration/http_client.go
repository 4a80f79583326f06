//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/pkg/response"
)

// HTTPClient sends JSON requests straight into the router, authenticated
// with a session token when one is set.
type HTTPClient struct {
	router *gin.Engine
	token  string
}

func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{router: router, token: token}
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (c *HTTPClient) send(method, path string, query map[string]string, body interface{}) (*Response, error) {
	var payload io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(raw)
	}

	if len(query) > 0 {
		q := url.Values{}
		for k, v := range query {
			q.Set(k, v)
		}
		path += "?" + q.Encode()
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return &Response{StatusCode: w.Code, Body: w.Body.Bytes()}, nil
}

func (c *HTTPClient) GET(path string, query ...map[string]string) (*Response, error) {
	var q map[string]string
	if len(query) > 0 {
		q = query[0]
	}
	return c.send(http.MethodGet, path, q, nil)
}

func (c *HTTPClient) POST(path string, body interface{}) (*Response, error) {
	return c.send(http.MethodPost, path, nil, body)
}

func (c *HTTPClient) PUT(path string, body interface{}) (*Response, error) {
	return c.send(http.MethodPut, path, nil, body)
}

func (c *HTTPClient) DELETE(path string) (*Response, error) {
	return c.send(http.MethodDelete, path, nil, nil)
}

func (r *Response) DecodeJSON(target interface{}) error {
	return json.Unmarshal(r.Body, target)
}

// GetErrorMessage returns the kind and message of an error body, or the raw
// body when it is not one.
func (r *Response) GetErrorMessage() string {
	var e response.ErrorResponse
	if err := json.Unmarshal(r.Body, &e); err != nil || e.Error == "" {
		return string(r.Body)
	}
	if e.Kind == "" {
		return e.Error
	}
	return e.Kind + ": " + e.Error
}
