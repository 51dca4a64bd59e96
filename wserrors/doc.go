// Package wserrors provides structured error types for the mwstools library.
//
// Import path: github.com/mwstools/mwstools/wserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of failures and
// implement appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [APIError]: Application-level errors reported by the remote Moodle site
//   - [NetworkError]: Transport-level failures (timeout, non-2xx status, connection errors)
//   - [AuthError]: Authentication-specific denial
//   - [ValidationError]: Local precondition violations such as missing configuration
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrAPI]: Matches any [APIError]
//   - [ErrNetwork]: Matches any [NetworkError]
//   - [ErrAuth]: Matches any [AuthError]
//   - [ErrValidation]: Matches any [ValidationError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := c.Call(ctx, "core_course_get_courses", p)
//	if errors.Is(err, wserrors.ErrNetwork) {
//	    // The call never completed; safe for the caller to retry.
//	}
//
// Extract error details with errors.As():
//
//	var apiErr *wserrors.APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.ErrCode == "invalidtoken" {
//	        // Re-provision the token.
//	    }
//	}
//
// # Error Chaining
//
// NetworkError supports error chaining via the Cause field and Unwrap(),
// so underlying transport errors remain reachable:
//
//	var netErr *wserrors.NetworkError
//	if errors.As(err, &netErr) {
//	    if errors.Is(netErr.Cause, context.DeadlineExceeded) {
//	        // The configured timeout expired.
//	    }
//	}
//
// No error produced by this library is retried or swallowed internally;
// every failure is terminal for the call that produced it.
package wserrors
