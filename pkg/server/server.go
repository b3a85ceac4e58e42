package server

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lokchuen/congkit/internal/logger"
	"github.com/lokchuen/congkit/pkg/config"
	"github.com/lokchuen/congkit/pkg/congkit"
)

// Server answers lookup requests against one immutable table over a
// msgpack stream. The table is read-only so requests need no locking.
type Server struct {
	db      *congkit.DB
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates a server speaking msgpack over stdin/stdout.
func NewServer(db *congkit.DB, cfg *config.Config) *Server {
	return NewServerIO(db, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a server on explicit reader/writer streams.
func NewServerIO(db *congkit.DB, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		db:      db,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
}

// Start processes requests until the input stream closes.
func (s *Server) Start() error {
	s.log.Debug("IPC server started", "entries", s.db.Len(), "scheme", s.db.Version())
	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case "codes":
		s.handleCodes(req)
	case "match":
		s.handleMatch(req)
	case "match_multi":
		s.handleMatchMulti(req)
	case "radicals":
		s.send(RadicalsResponse{ID: req.ID, Radicals: s.db.Radicals(req.Query)})
	case "complete":
		s.handleComplete(req)
	case "info":
		s.send(InfoResponse{ID: req.ID, Entries: s.db.Len(), Scheme: s.db.Version().String()})
	default:
		s.sendError(req.ID, "unknown op: "+req.Op, 400)
	}
}

func (s *Server) handleCodes(req Request) {
	if req.Query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return
	}
	start := time.Now()
	results := s.db.Codes([]rune(req.Query))
	replies := make([]CodeReply, len(results))
	for i, r := range results {
		reply := CodeReply{Char: string(r.Char), Code: r.Code, Found: r.Found}
		if r.Found {
			reply.Radicals = s.db.Radicals(r.Code)
		}
		replies[i] = reply
	}
	s.send(CodesResponse{
		ID:        req.ID,
		Results:   replies,
		Count:     len(replies),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleMatch(req Request) {
	if req.Query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return
	}
	start := time.Now()
	chars, err := s.db.Characters(req.Query)
	if err != nil {
		s.sendError(req.ID, err.Error(), 422)
		return
	}
	s.send(MatchResponse{
		ID:        req.ID,
		Chars:     string(chars),
		Count:     len(chars),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleMatchMulti(req Request) {
	if len(req.Patterns) == 0 {
		s.sendError(req.ID, "missing 'ps' parameter", 400)
		return
	}
	if max := s.cfg.Server.MaxPatterns; max > 0 && len(req.Patterns) > max {
		s.sendError(req.ID, "too many patterns", 400)
		return
	}
	start := time.Now()
	matches, err := s.db.CharactersMulti(req.Patterns)
	if err != nil {
		s.sendError(req.ID, err.Error(), 422)
		return
	}
	results := make(map[string]string, len(matches))
	for pattern, chars := range matches {
		results[pattern] = string(chars)
	}
	s.send(MultiMatchResponse{
		ID:        req.ID,
		Results:   results,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleComplete(req Request) {
	if req.Query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return
	}
	limit := req.Limit
	if limit <= 0 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}
	start := time.Now()
	matches := s.db.Complete(req.Query, limit)
	results := make([]CompletionMatch, len(matches))
	for i, m := range matches {
		results[i] = CompletionMatch{Char: string(m.Char), Code: m.Code}
	}
	s.send(CompleteResponse{
		ID:        req.ID,
		Matches:   results,
		Count:     len(results),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.log.Debugf("Request %s failed: %s", id, message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
