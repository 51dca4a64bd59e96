package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwstools/mwstools/client"
	"github.com/mwstools/mwstools/params"
	"github.com/mwstools/mwstools/wserrors"
)

// Environment variables supplying default site credentials.
const (
	envBaseURL   = "MWSTOOLS_BASE_URL"
	envToken     = "MWSTOOLS_TOKEN"
	envTimeoutMS = "MWSTOOLS_TIMEOUT_MS"
)

type callFunctionInput struct {
	Function  string         `json:"function"              jsonschema:"Web service function name (e.g. core_course_get_courses)"`
	Params    map[string]any `json:"params,omitempty"      jsonschema:"Function parameters as a JSON object"`
	BaseURL   string         `json:"base_url,omitempty"    jsonschema:"Moodle site base URL (default: MWSTOOLS_BASE_URL env var)"`
	Token     string         `json:"token,omitempty"       jsonschema:"Web service token (default: MWSTOOLS_TOKEN env var)"`
	TimeoutMS int            `json:"timeout_ms,omitempty"  jsonschema:"Per-call timeout in milliseconds (default: MWSTOOLS_TIMEOUT_MS env var or 30000)"`
}

type callWarning struct {
	Item        string `json:"item,omitempty"`
	ItemID      int64  `json:"itemid,omitempty"`
	WarningCode string `json:"warningcode"`
	Message     string `json:"message"`
}

type callFunctionOutput struct {
	Function  string          `json:"function"`
	Data      json.RawMessage `json:"data"`
	Warnings  []callWarning   `json:"warnings,omitempty"`
	ErrorCode string          `json:"error_code,omitempty"`
	Exception string          `json:"exception,omitempty"`
	DebugInfo string          `json:"debug_info,omitempty"`
}

func handleCallFunction(ctx context.Context, _ *mcp.CallToolRequest, input callFunctionInput) (*mcp.CallToolResult, callFunctionOutput, error) {
	if input.Function == "" {
		return errResult(fmt.Errorf("function is required")), callFunctionOutput{}, nil
	}

	c, err := newClient(input)
	if err != nil {
		return errResult(err), callFunctionOutput{}, nil
	}

	var p *params.Values
	if len(input.Params) > 0 {
		p = params.FromMap(input.Params)
	}

	result, err := c.Call(ctx, input.Function, p)
	if err != nil {
		// Application-level errors carry structure worth returning rather
		// than flattening into an opaque message.
		var apiErr *wserrors.APIError
		if errors.As(err, &apiErr) {
			output := callFunctionOutput{
				Function:  input.Function,
				ErrorCode: apiErr.ErrCode,
				Exception: apiErr.Exception,
				DebugInfo: apiErr.DebugInfo,
			}
			return errResult(apiErr), output, nil
		}
		return errResult(err), callFunctionOutput{}, nil
	}

	output := callFunctionOutput{
		Function: input.Function,
		Data:     result.Data,
	}
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, callWarning{
			Item:        w.Item,
			ItemID:      w.ItemID,
			WarningCode: w.WarningCode,
			Message:     w.Message,
		})
	}
	return nil, output, nil
}

// newClient builds a client from explicit input fields, falling back to the
// MWSTOOLS_* environment for anything omitted.
func newClient(input callFunctionInput) (*client.Client, error) {
	baseURL := input.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv(envBaseURL)
	}
	token := input.Token
	if token == "" {
		token = os.Getenv(envToken)
	}

	timeoutMS := input.TimeoutMS
	if timeoutMS <= 0 {
		if env := os.Getenv(envTimeoutMS); env != "" {
			if parsed, err := strconv.Atoi(env); err == nil {
				timeoutMS = parsed
			}
		}
	}

	var opts []client.Option
	if timeoutMS > 0 {
		opts = append(opts, client.WithTimeout(time.Duration(timeoutMS)*time.Millisecond))
	}
	return client.New(baseURL, token, opts...)
}
