package model

type ErrorResponse struct {
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

// ErrorKindData tells clients which domain rule rejected the request.
type ErrorKindData struct {
	Kind string `json:"kind"`
}
