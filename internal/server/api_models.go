package server

// PredictRequest is the payload for requesting a diagnosis.
type PredictRequest struct {
	Animal   string   `json:"animal" example:"Cow"`
	Symptoms []string `json:"symptoms" example:"High fever,Nasal discharge,Cough"`
	TopK     int      `json:"top_k" example:"3"`
}

// RootResponse points a caller at the interesting endpoints.
type RootResponse struct {
	Status string `json:"status" example:"ok"`
	Docs   string `json:"docs" example:"/docs/index.html"`
	Health string `json:"health" example:"/health"`
}

// ValidationErrorResponse itemizes why a request was rejected.
type ValidationErrorResponse struct {
	Errors []string `json:"errors" example:"Please provide at least 3 valid symptoms."`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"prediction failed"`
}
