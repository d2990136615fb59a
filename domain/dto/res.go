package dto

// ErrorRes is the uniform error contract for every route. Details carries a
// short diagnostic string; provider-internal structures are never embedded.
type ErrorRes struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ListRes is the uniform shape for provider list responses.
type ListRes struct {
	Items         interface{} `json:"items"`
	NextPageToken string      `json:"next_page_token,omitempty"`
}

// SuccessRes is returned by idempotent mutations such as disconnect.
type SuccessRes struct {
	Success bool `json:"success"`
}
