package constants

import "os"

func getEnv(name string, fallback string) string {
	v := os.Getenv(name)
	if v != "" {
		return v
	}
	return fallback
}

func GetOutDir() string {
	return getEnv("EABC_OUT_DIR", "./out")
}

func GetCompressMethod() string {
	return getEnv("EABC_COMPRESS_METHOD", "gzip")
}

func GetAddr() string {
	return getEnv("EABC_ADDR", ":8080")
}

func GetArchiveTable() string {
	return getEnv("EABC_ARCHIVE_TABLE", "eabc-envelopes")
}

func GetDynamoEndpoint() string {
	return getEnv("DYNAMODB_ENDPOINT", "http://localhost:8000")
}

// 480 ticks per quarter note is the resolution ACE Studio expects
const TicksPerQuarter = 480

const EnvelopeVersion = 1000

const DocumentVersion = "1.0.0"

const DefaultVoice = "Misty"

const DefaultTrackName = "Vocal Track"

const DefaultVelocity = 80
