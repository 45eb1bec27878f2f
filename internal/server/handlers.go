package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ieltsvocab/vocabquiz/internal/config"
	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
	"github.com/ieltsvocab/vocabquiz/internal/vocab"
	"github.com/sirupsen/logrus"
)

type questionsResponse struct {
	Questions []questiongen.Question `json:"questions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) generateQuestions(w http.ResponseWriter, r *http.Request) {
	var req questiongen.Request
	if !decodeBody(w, r, &req) {
		return
	}

	res := s.generator.Generate(r.Context(), req)
	questions := res.Questions
	if questions == nil {
		questions = []questiongen.Question{}
	}

	config.WithContext(r.Context()).WithFields(logrus.Fields{
		"mode":      req.Mode,
		"category":  req.Category,
		"questions": len(questions),
		"fallback":  res.Fallback,
	}).Info("questions generated")

	setFallback(w, res.Fallback)
	writeJSON(w, http.StatusOK, questionsResponse{Questions: questions})
}

func (s *Server) analyzeSentence(w http.ResponseWriter, r *http.Request) {
	var req sentence.Request
	if !decodeBody(w, r, &req) {
		return
	}

	res := s.analyzer.Analyze(r.Context(), req)
	setFallback(w, res.Fallback)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, vocab.AllCategories())
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeBody reads a size-limited JSON body into v, writing a 400 and
// returning false when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		msg := "invalid request body"
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			msg = "request body too large"
		}
		config.WithContext(r.Context()).WithError(err).Warn("rejecting request body")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return false
	}
	return true
}

func setFallback(w http.ResponseWriter, fallback bool) {
	if fallback {
		w.Header().Set(FallbackHeader, "true")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		config.Logger().WithError(err).Warn("writing response")
	}
}
