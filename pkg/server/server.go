// Package server implements the line-oriented JSON IPC mode: requests arrive
// one per line on stdin, responses leave one per line on stdout.
package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bastiangx/nametag/pkg/config"
	"github.com/bastiangx/nametag/pkg/tagger"
	"github.com/charmbracelet/log"
)

// Request represents an incoming request from the client
type Request struct {
	Command string `json:"command"`
	Line    string `json:"line,omitempty"`
}

// MatchRecord is the wire format for one match
type MatchRecord struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Text   string `json:"text"`
	Strict bool   `json:"strict"`
	Type   string `json:"type"`
	Label  string `json:"label"`
}

// TagResponse is the overall response for a tag request
type TagResponse struct {
	Matches []MatchRecord `json:"matches"`
	Count   int           `json:"count"`
	TimeUs  int64         `json:"time_us"`
}

// ErrorResponse represents an IPC error
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// Server handles the IPC for dictionary tagging. The dictionary and matcher
// switches are fixed for the session; only limits reload from config.
type Server struct {
	tagger     *tagger.Tagger
	reader     *bufio.Reader
	writer     io.Writer
	configPath string

	mu         sync.RWMutex
	maxLineLen int

	done chan struct{}
}

// NewServer creates a tagging server using stdin/stdout for IPC.
func NewServer(tg *tagger.Tagger, cfg *config.Config, configPath string) *Server {
	return &Server{
		tagger:     tg,
		reader:     bufio.NewReader(os.Stdin),
		writer:     os.Stdout,
		configPath: configPath,
		maxLineLen: cfg.Server.MaxLineLen,
		done:       make(chan struct{}),
	}
}

// Start begins listening for IPC requests. It returns on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server")

	if s.configPath != "" {
		go s.watchConfig()
	}
	defer close(s.done)

	// Signal that the server is ready
	s.sendResponse(map[string]string{"status": "ready"})

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Reading from stdin: %v", err)
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.handleRequest(line)
	}
}

// handleRequest processes an incoming request string
func (s *Server) handleRequest(requestStr string) {
	var request Request
	if err := json.Unmarshal([]byte(requestStr), &request); err != nil {
		s.sendError("Invalid JSON request", 400)
		log.Errorf("Unmarshaling request: %v", err)
		return
	}

	switch request.Command {
	case "tag":
		s.handleTag(request)
	case "health":
		s.sendResponse(map[string]string{"status": "ok"})
	default:
		s.sendError(fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

// handleTag scans one line and responds with every match found.
func (s *Server) handleTag(request Request) {
	s.mu.RLock()
	maxLen := s.maxLineLen
	s.mu.RUnlock()

	if len(request.Line) > maxLen {
		s.sendError(fmt.Sprintf("Line exceeds maximum length of %d bytes", maxLen), 400)
		return
	}

	start := time.Now()
	matches := s.tagger.TagLine(request.Line)
	elapsed := time.Since(start)

	records := make([]MatchRecord, 0, len(matches))
	for _, m := range matches {
		records = append(records, MatchRecord{
			Start:  m.Start,
			End:    m.End,
			Text:   m.Text,
			Strict: m.Strict,
			Type:   m.Value.Type.String(),
			Label:  m.Value.Label,
		})
	}

	s.sendResponse(TagResponse{
		Matches: records,
		Count:   len(records),
		TimeUs:  elapsed.Microseconds(),
	})
}

// sendResponse marshals the given response into JSON and writes it followed
// by a newline.
func (s *Server) sendResponse(response interface{}) {
	data, err := json.Marshal(response)
	if err != nil {
		log.Errorf("Marshaling response: %v", err)
		s.sendError("Internal server error", 500)
		return
	}
	fmt.Fprintln(s.writer, string(data))
}

// sendError sends an error response
func (s *Server) sendError(message string, code int) {
	errResponse := ErrorResponse{
		Error:  message,
		Status: code,
	}
	s.sendResponse(errResponse)
}
