package model

type EncodeRequestBody struct {
	Source         string `json:"eabc"`
	CompressMethod string `json:"compressMethod,omitempty"`
	Timestamp      bool   `json:"timestamp,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
