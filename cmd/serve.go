package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/eabc2acep/constants"
	"github.com/jsphweid/eabc2acep/db"
	"github.com/jsphweid/eabc2acep/envelope"
	"github.com/jsphweid/eabc2acep/model"
	"github.com/jsphweid/eabc2acep/parser"
	"github.com/jsphweid/eabc2acep/project"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveArchive bool

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveArchive, "archive", false, "store every encoded envelope in DynamoDB")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the encoder over HTTP",
	Long:  `Serves POST /encode and POST /project; with --archive also GET /envelopes/{id}`,
	Run: func(cmd *cobra.Command, args []string) {
		var archive *db.Archive
		if serveArchive {
			a, err := db.NewArchive(constants.GetDynamoEndpoint(), constants.GetArchiveTable())
			cobra.CheckErr(err)
			archive = a
		}
		s := NewServer(constants.GetCompressMethod(), archive)
		log.Printf("listening on %v", constants.GetAddr())
		log.Fatal(http.ListenAndServe(constants.GetAddr(), s.Router()))
	},
}

type Server struct {
	compressors   map[envelope.Method]envelope.Compressor
	defaultMethod envelope.Method
	archive       *db.Archive
}

// NewServer starts every compressor up front. Requests that arrive before one
// is ready are refused rather than queued.
func NewServer(defaultMethod string, archive *db.Archive) *Server {
	return &Server{
		compressors: map[envelope.Method]envelope.Compressor{
			envelope.Gzip: envelope.NewGzip(),
			envelope.Zstd: envelope.NewZstd(),
		},
		defaultMethod: envelope.Method(defaultMethod),
		archive:       archive,
	}
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/encode", s.HandleEncode).Methods("POST")
	router.HandleFunc("/project", s.HandleProject).Methods("POST")
	if s.archive != nil {
		router.HandleFunc("/envelopes/{id}", s.HandleEnvelope).Methods("GET")
	}
	return cors.Default().Handler(router)
}

func readEncodeRequest(r *http.Request) (model.EncodeRequestBody, error) {
	var input model.EncodeRequestBody
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return input, errors.Wrap(err, "could not read request body")
	}
	if err := json.Unmarshal(reqBody, &input); err != nil {
		return input, errors.Wrap(err, "could not unmarshal request body")
	}
	return input, nil
}

func (s *Server) HandleEncode(w http.ResponseWriter, r *http.Request) {
	input, err := readEncodeRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	method := s.defaultMethod
	if input.CompressMethod != "" {
		method = envelope.Method(input.CompressMethod)
	}
	c, ok := s.compressors[method]
	if !ok {
		writeError(w, http.StatusBadRequest, errors.Wrapf(envelope.ErrUnknownMethod, "%q", method))
		return
	}
	enc := envelope.NewEncoder(c)
	enc.Timestamp = input.Timestamp

	res, err := convert(input.Source, enc)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	if s.archive != nil {
		id, err := s.archive.Put(res.Envelope, input.Source)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("X-Envelope-Id", id)
	}
	writeJSON(w, res.Envelope)
}

func (s *Server) HandleProject(w http.ResponseWriter, r *http.Request) {
	input, err := readEncodeRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := convert(input.Source, nil)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, res.Project)
}

func (s *Server) HandleEnvelope(w http.ResponseWriter, r *http.Request) {
	env, err := s.archive.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, env)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, parser.ErrEmptyInput),
		errors.Is(err, parser.ErrNoNotes),
		errors.Is(err, project.ErrNoContent),
		errors.Is(err, envelope.ErrNoContent):
		return http.StatusBadRequest
	case errors.Is(err, envelope.ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("could not write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}
