package dto

// ProblemDetails is the error body returned by all handlers, following the
// RFC 7807 problem-details shape.
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}
