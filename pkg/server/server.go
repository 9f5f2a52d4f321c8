package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordlearn/internal/utils"
	"github.com/bastiangx/wordlearn/pkg/config"
	"github.com/bastiangx/wordlearn/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for a provider
type Server struct {
	provider     suggest.IProvider
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a server reading requests from in and writing responses to out
func NewServer(provider suggest.IProvider, cfg *config.Config, in io.Reader, out io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		provider: provider,
		config:   cfg,
		decoder:  msgpack.NewDecoder(in),
		encoder:  msgpack.NewEncoder(out),
	}
}

// Start signals readiness and serves requests until the input ends.
// A request that cannot be decoded leaves the stream unusable, so it is
// answered with an error and Start returns.
func (s *Server) Start() error {
	log.Debug("Starting Server.")
	if err := s.send(Response{Status: StatusReady}); err != nil {
		return err
	}

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("decoding request: %w", err)
		}

		s.requestCount++
		if err := s.send(s.handleRequest(request)); err != nil {
			return err
		}
	}
}

func (s *Server) handleRequest(request Request) Response {
	switch request.Action {
	case ActionTrain:
		return s.handleTrain(request)
	case ActionLookup:
		return s.handleLookup(request)
	case ActionStats:
		return Response{ID: request.ID, Status: StatusOK, Stats: s.provider.Stats()}
	default:
		return errorResponse(request.ID, fmt.Sprintf("unknown action: %q", request.Action), 400)
	}
}

func (s *Server) handleTrain(request Request) Response {
	start := time.Now()
	if err := s.provider.Train(request.Payload); err != nil {
		log.Debugf("Train rejected for request %s: %v", request.ID, err)
		return errorResponse(request.ID, err.Error(), errorCode(err))
	}
	return Response{
		ID:        request.ID,
		Status:    StatusOK,
		Count:     len(utils.Tokens(request.Payload)),
		TimeTaken: time.Since(start).Microseconds(),
	}
}

func (s *Server) handleLookup(request Request) Response {
	fragment := request.Payload
	if len(fragment) > s.config.Server.MaxFragment {
		return errorResponse(request.ID,
			fmt.Sprintf("fragment exceeds maximum length of %d characters", s.config.Server.MaxFragment), 400)
	}

	limit := request.Limit
	if limit < 1 || limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	candidates, err := s.provider.Lookup(fragment)
	elapsed := time.Since(start)
	if err != nil {
		return errorResponse(request.ID, err.Error(), errorCode(err))
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	suggestions := make([]Suggestion, len(candidates))
	for i, c := range candidates {
		suggestions[i] = Suggestion{Word: c.Word, Confidence: c.Confidence}
	}

	log.Debugf("Took [ %v ] for fragment '%s'", elapsed, fragment)
	return Response{
		ID:          request.ID,
		Status:      StatusOK,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
}

func (s *Server) send(response Response) error {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encoding response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) {
	_ = s.send(errorResponse(id, message, code))
}

func errorResponse(id, message string, code int) Response {
	return Response{ID: id, Status: StatusError, Error: message, Code: code}
}

// errorCode maps provider errors onto response codes
func errorCode(err error) int {
	switch {
	case errors.Is(err, suggest.ErrInvalidInput), errors.Is(err, suggest.ErrInsufficientInput):
		return 400
	case errors.Is(err, suggest.ErrNotFound):
		return 404
	case errors.Is(err, suggest.ErrNotYetTrained):
		return 409
	default:
		return 500
	}
}
