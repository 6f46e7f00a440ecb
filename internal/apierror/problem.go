// Package apierror renders API failures as RFC 9457 problem details
// (application/problem+json).
package apierror

// ProblemDetails is the error body returned by every failing endpoint.
//
// Type, Title, Status, Detail and Instance are the RFC 9457 members. The rest
// are extensions: RequestID echoes X-Request-ID, UserMessage is safe to show
// in the app, RetryAfter accompanies 429s, Action hints what the client
// should do next, and Errors lists per-field validation failures.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	RequestID   string       `json:"request_id,omitempty"`
	UserMessage string       `json:"user_message,omitempty"`
	RetryAfter  *int         `json:"retry_after,omitempty"`
	Action      string       `json:"action,omitempty"`
	Errors      []FieldError `json:"errors,omitempty"`
}

// FieldError is one failed request field, named in snake_case.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (p *ProblemDetails) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}
