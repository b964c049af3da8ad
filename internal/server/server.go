// ABOUTME: HTTP handlers for the question-answering service
// ABOUTME: Serves POST /qa, POST /upload, and a GET / welcome that never requires an index
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/harper/sitechat/internal/answer"
	"github.com/harper/sitechat/internal/extract"
	"github.com/harper/sitechat/internal/index"
	"github.com/harper/sitechat/internal/models"
)

// maxUploadBytes caps multipart parsing memory for /upload
const maxUploadBytes = 10 << 20

// Server wires the answering flow and upload ingestion into HTTP handlers.
// The store may be nil when no index existed at startup; the welcome endpoint
// still works and /qa reports a clear not-ready condition.
type Server struct {
	answerer  *answer.Answerer
	extractor *extract.Extractor
	embedder  index.Embedder
	indexPath string
	store     *index.Store
}

// New creates a Server. store may be nil if the index failed to load.
func New(answerer *answer.Answerer, extractor *extract.Extractor, embedder index.Embedder, indexPath string, store *index.Store) *Server {
	return &Server{
		answerer:  answerer,
		extractor: extractor,
		embedder:  embedder,
		indexPath: indexPath,
		store:     store,
	}
}

// Routes returns the HTTP mux for the service
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleWelcome)
	mux.HandleFunc("/qa", s.handleQA)
	mux.HandleFunc("/upload", s.handleUpload)
	return mux
}

// handleWelcome returns a static status payload. It must succeed even when
// the index failed to load, so answering readiness is reported, not required.
func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	entries := 0
	if s.store != nil {
		entries = s.store.Len()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Welcome to the chatbot! You can ask questions and upload PDFs for processing.",
		"index_loaded": s.answerer != nil && s.answerer.Ready(),
		"entries":      entries,
	})
}

type questionRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleQA(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.answerer.Answer(r.Context(), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, answer.ErrEmptyQuestion):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, answer.ErrIndexNotInitialized):
			writeError(w, http.StatusServiceUnavailable, "vector index not initialized, run an ingestion first")
		default:
			log.Printf("QA request failed: %v", err)
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleUpload extracts text from an uploaded PDF or image and appends it to
// the persisted index as a single chunk tagged with the filename. A running
// answering process only sees the new entry after a restart; hot reload of
// the in-memory index is deliberately out of scope.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	text, err := s.extractor.Extract(header.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			writeError(w, http.StatusUnsupportedMediaType, err.Error())
		case errors.Is(err, extract.ErrNoExtractableText):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Upload extraction failed: %v", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("an error occurred while processing the file: %v", err))
		}
		return
	}

	store, err := index.Open(s.indexPath, s.embedder)
	if err != nil {
		log.Printf("Opening index for upload failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to open index")
		return
	}

	if _, err := store.Add([]models.Chunk{{Text: text, Source: header.Filename}}); err != nil {
		log.Printf("Adding upload to index failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to index file content")
		return
	}

	if err := store.Save(); err != nil {
		log.Printf("Saving index after upload failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save index")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("File %q uploaded and processed successfully!", header.Filename),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Writing response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
