// Package client issues Moodle Web Services REST calls.
//
// A Client is bound to one site and one token. Each Call sends a single
// form-encoded POST to the site's REST endpoint and classifies the JSON
// response as a success, an application-level error, or a success carrying
// warnings:
//
//	c, err := client.New("https://moodle.example.com", token,
//		client.WithTimeout(10*time.Second))
//	if err != nil {
//		return err
//	}
//	result, err := c.Call(ctx, "core_course_get_courses", params.New().Set("ids", []int{42}))
//
// Application-level failures surface as *wserrors.APIError, transport-level
// failures as *wserrors.NetworkError. Both match their sentinel with
// errors.Is.
//
// Response shapes are not normalized: some remote functions wrap their
// result together with a warnings list, others return the result bare.
// When a warnings list is present it is additionally extracted into
// CallResult.Warnings, but CallResult.Data always holds the response body
// verbatim, wrapping keys included.
package client
