package view

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrMarshalBody is returned by HTTP when the body can't be encoded
	// as JSON.
	ErrMarshalBody = errors.New("error encoding body as JSON")
)

// Response is a complete HTTP response: a status, headers, and an optional
// body. A nil Body means the response has no body at all, which is distinct
// from an empty one.
type Response struct {
	StatusCode int     `json:"statusCode"`
	Headers    Header  `json:"headers"`
	Body       *string `json:"body,omitempty"`
}

// BodyString returns the Response's body, or an empty string if it has none.
func (r *Response) BodyString() string {
	if r.Body == nil {
		return ""
	}
	return *r.Body
}

// Write sends the Response to w.
func (r *Response) Write(w http.ResponseWriter) error {
	for k, v := range r.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(r.StatusCode)
	if r.Body == nil {
		return nil
	}
	if _, err := io.WriteString(w, *r.Body); err != nil {
		return fmt.Errorf("error writing response body: %w", err)
	}
	return nil
}

// HTTP builds a Response with the passed status code and the baseline
// security headers, with headers merged over them. The status code is not
// validated.
//
// If body is nil, the Response has no body; otherwise body is encoded as
// JSON, so an empty map becomes "{}" and an empty slice "[]". No
// Content-Type is set unless headers sets one.
func HTTP(statusCode int, body any, headers Header) (*Response, error) {
	resp := &Response{
		StatusCode: statusCode,
		Headers:    mergeHeaders(SecurityHeaders(), headers),
	}
	if body == nil {
		return resp, nil
	}
	encoded, err := marshalBody(body)
	if err != nil {
		return nil, err
	}
	resp.Body = &encoded
	return resp, nil
}

// Redirect builds a 301 Response pointing at path, which is used verbatim.
// The Location header comes first, then the baseline security headers, then
// headers, each overriding the last.
func Redirect(path string, headers Header) *Response {
	return &Response{
		StatusCode: http.StatusMovedPermanently,
		Headers: mergeHeaders(
			Header{headerLocation: path},
			SecurityHeaders(),
			headers,
		),
	}
}

func marshalBody(body any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshalBody, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
