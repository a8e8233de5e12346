package handler

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string  `json:"status"`
	Cache     string  `json:"cache"`
	FetchedAt *string `json:"fetched_at,omitempty"`
}
