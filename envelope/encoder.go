package envelope

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/eabc2acep/constants"
	"github.com/jsphweid/eabc2acep/model"
	"github.com/pkg/errors"
)

var (
	ErrNoContent   = errors.New("no content to encode")
	ErrNotReady    = errors.New("compression not ready")
	ErrCompression = errors.New("compression failed")
)

const saltBytes = 8

type Encoder struct {
	Compressor Compressor
	Version    int

	// Timestamp adds the encode time to the envelope.
	Timestamp bool

	Rand io.Reader
	Now  func() time.Time
}

func NewEncoder(c Compressor) *Encoder {
	return &Encoder{
		Compressor: c,
		Version:    constants.EnvelopeVersion,
		Rand:       rand.Reader,
		Now:        time.Now,
	}
}

type Options struct {
	Warnings []string
}

// Encode serializes doc, compresses it and wraps it in an envelope. It never
// waits for the compressor: if it is not Ready the call fails with
// ErrNotReady.
func (e *Encoder) Encode(doc *model.Project, opts Options) (*model.Envelope, error) {
	if doc == nil || len(doc.Tracks) == 0 || len(doc.Tracks[0].Notes) == 0 {
		return nil, ErrNoContent
	}
	if e.Compressor == nil {
		return nil, errors.Wrap(ErrNotReady, "no compressor")
	}
	if state := e.Compressor.State(); state != Ready {
		return nil, errors.Wrapf(ErrNotReady, "%v is %v", e.Compressor.Method(), state)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "could not serialize project")
	}
	compressed, err := e.Compressor.Compress(data)
	if err != nil {
		if errors.Is(err, ErrNotReady) {
			return nil, err
		}
		return nil, errors.Wrapf(ErrCompression, "%v: %v", e.Compressor.Method(), err)
	}

	salt, err := e.salt()
	if err != nil {
		return nil, err
	}

	env := &model.Envelope{
		CompressMethod: string(e.Compressor.Method()),
		Content:        base64.StdEncoding.EncodeToString(compressed),
		Salt:           salt,
		Version:        e.Version,
		Metadata:       envelopeMetadata(doc),
		DebugInfo: &model.DebugInfo{
			RequestId: uuid.New().String(),
			Warnings:  opts.Warnings,
		},
	}
	if e.Timestamp {
		env.Timestamp = e.now().UnixMilli()
	}
	return env, nil
}

func (e *Encoder) salt() (string, error) {
	r := e.Rand
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, saltBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", errors.Wrap(err, "could not generate salt")
	}
	return hex.EncodeToString(buf), nil
}

func (e *Encoder) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func envelopeMetadata(doc *model.Project) map[string]string {
	res := make(map[string]string)
	for _, k := range []string{"title", "composer"} {
		if v := doc.Metadata[k]; v != "" {
			res[k] = v
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// Marshal renders an envelope the way .acep files are written.
func Marshal(env *model.Envelope) ([]byte, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "could not serialize envelope")
	}
	return data, nil
}
