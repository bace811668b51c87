package utils

import "time"

// Envelopes shared by every JSON endpoint.

type SuccessResponse struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Meta    *Meta `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
	Meta    *Meta    `json:"meta,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Timestamp time.Time `json:"timestamp"`
}

func newMeta() *Meta {
	return &Meta{Timestamp: time.Now().UTC()}
}

func CreateErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: APIError{Code: code, Message: message},
		Meta:  newMeta(),
	}
}

func CreateSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    newMeta(),
	}
}
