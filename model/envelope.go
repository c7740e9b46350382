package model

type Envelope struct {
	CompressMethod string            `json:"compressMethod"`
	Content        string            `json:"content"`
	Salt           string            `json:"salt"`
	Version        int               `json:"version"`
	Timestamp      int64             `json:"timestamp,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	DebugInfo      *DebugInfo        `json:"debugInfo,omitempty"`
}

type DebugInfo struct {
	RequestId string   `json:"requestId"`
	Warnings  []string `json:"warnings,omitempty"`
}
