package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/mwstools/mwstools/params"
	"github.com/mwstools/mwstools/wserrors"
)

// Protocol form fields added to every request. They always win over
// caller-supplied parameters with the same name.
const (
	fieldToken    = "wstoken"
	fieldFunction = "wsfunction"
	fieldFormat   = "moodlewsrestformat"

	jsonFormat  = "json"
	contentType = "application/x-www-form-urlencoded"
)

// Warning is a non-fatal item attached to an otherwise successful response.
type Warning struct {
	Item        string `json:"item,omitempty"`
	ItemID      int64  `json:"itemid,omitempty"`
	WarningCode string `json:"warningcode"`
	Message     string `json:"message"`
}

// CallResult holds one completed call.
//
// Data is the response body exactly as the server sent it. When the body is
// an object with a warnings list, the list is additionally decoded into
// Warnings, but Data keeps the wrapping shape untouched.
type CallResult struct {
	Data     json.RawMessage
	Warnings []Warning
}

// Decode unmarshals the raw response data into v.
func (r *CallResult) Decode(v any) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decoding call result: %w", err)
	}
	return nil
}

// Call invokes one web service function with the given parameters.
// p may be nil for functions that take none.
//
// The call fails with *wserrors.NetworkError on transport problems (timeout,
// connection failure, non-2xx status) and with *wserrors.APIError when the
// server answers with an application-level error object.
func (c *Client) Call(ctx context.Context, function string, p *params.Values) (*CallResult, error) {
	if function == "" {
		return nil, &wserrors.ValidationError{Field: "function", Message: "must not be empty"}
	}

	body := c.formBody(function, p)
	logger := c.logger.With("function", function)
	logger.Debug("calling web service function", "endpoint", c.Endpoint())

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), strings.NewReader(body))
	if err != nil {
		return nil, &wserrors.NetworkError{Message: "building request", Cause: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("request timed out", "timeout", c.timeout)
			return nil, &wserrors.NetworkError{
				Message: fmt.Sprintf("request timed out after %s", c.timeout),
				Cause:   err,
			}
		}
		return nil, &wserrors.NetworkError{Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &wserrors.NetworkError{
			Message:    "reading response body",
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("unexpected response status", "status", resp.StatusCode)
		return nil, &wserrors.NetworkError{
			Message:    fmt.Sprintf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			StatusCode: resp.StatusCode,
		}
	}

	result, err := classifyResponse(data)
	if err != nil {
		return nil, err
	}

	logger.Debug("call completed", "duration", time.Since(start),
		"warnings", len(result.Warnings))
	return result, nil
}

// formBody renders the URL-encoded request body. Protocol fields come first
// and shadow caller parameters of the same name.
func (c *Client) formBody(function string, p *params.Values) string {
	merged := params.New().
		Set(fieldToken, c.token).
		Set(fieldFunction, function).
		Set(fieldFormat, jsonFormat)

	if p != nil {
		p.Each(func(key string, value any) {
			switch key {
			case fieldToken, fieldFunction, fieldFormat:
				return
			}
			merged.Set(key, value)
		})
	}
	return params.EncodeForm(merged)
}

// classifyResponse parses the body and separates application-level errors
// from results. A body is an error exactly when it is an object carrying a
// message together with an exception or errorcode field; a bare message is a
// legitimate result shape for some functions.
func classifyResponse(data []byte) (*CallResult, error) {
	// The literal "null" is a valid success body for write-style functions.
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		trimmed = []byte("null")
	}

	var parsed any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&parsed); err != nil {
		return nil, &wserrors.NetworkError{Message: "invalid JSON in response body", Cause: err}
	}

	obj, isObject := parsed.(map[string]any)
	if isObject {
		if apiErr := apiErrorFrom(obj); apiErr != nil {
			return nil, apiErr
		}
	}

	result := &CallResult{Data: json.RawMessage(trimmed)}
	if isObject {
		if raw, ok := obj["warnings"].([]any); ok {
			result.Warnings = decodeWarnings(raw)
		}
	}
	return result, nil
}

// apiErrorFrom returns the application-level error an object describes, or
// nil when the object is a regular result.
func apiErrorFrom(obj map[string]any) *wserrors.APIError {
	message, hasMessage := obj["message"]
	_, hasException := obj["exception"]
	_, hasErrCode := obj["errorcode"]
	if !hasMessage || (!hasException && !hasErrCode) {
		return nil
	}

	apiErr := &wserrors.APIError{
		Message:   stringField(message),
		ErrCode:   "unknown",
		Exception: stringField(obj["exception"]),
		DebugInfo: stringField(obj["debuginfo"]),
	}
	if code := stringField(obj["errorcode"]); code != "" {
		apiErr.ErrCode = code
	}
	return apiErr
}

func decodeWarnings(raw []any) []Warning {
	warnings := make([]Warning, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		w := Warning{
			Item:        stringField(entry["item"]),
			WarningCode: stringField(entry["warningcode"]),
			Message:     stringField(entry["message"]),
		}
		if id, ok := entry["itemid"].(json.Number); ok {
			w.ItemID, _ = id.Int64()
		}
		warnings = append(warnings, w)
	}
	return warnings
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}
