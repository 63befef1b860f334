// Package storetest runs an in-process stand-in for the collection data
// store. It speaks the same conventions as the real store (equality filters,
// _expand relation inlining, server-assigned ids) and can be told to fail
// the next request against a collection, which is how the partial-commit
// path is exercised without a flaky network.
package storetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

type Server struct {
	mu          sync.Mutex
	collections map[string][]map[string]any
	nextID      map[string]int
	failures    map[string]int

	httpServer *httptest.Server
}

func NewServer() *Server {
	s := &Server{
		collections: make(map[string][]map[string]any),
		nextID:      make(map[string]int),
		failures:    make(map[string]int),
	}

	s.httpServer = httptest.NewServer(http.HandlerFunc(s.handle))

	return s
}

func (s *Server) URL() string {
	return s.httpServer.URL
}

func (s *Server) Close() {
	s.httpServer.Close()
}

// Seed inserts records directly, assigning ids to any record without one.
func (s *Server) Seed(collection string, records ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		if _, ok := record["id"]; !ok {
			record["id"] = float64(s.assignID(collection))
		}
		s.collections[collection] = append(s.collections[collection], record)
	}
}

// Records returns a snapshot of a collection's current contents.
func (s *Server) Records(collection string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]map[string]any, len(s.collections[collection]))
	copy(out, s.collections[collection])

	return out
}

// FailNext makes the next request with the given method on the collection
// answer with the given status code.
func (s *Server) FailNext(method, collection string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[method+" "+collection] = status
}

func (s *Server) assignID(collection string) int {
	max := s.nextID[collection]

	for _, record := range s.collections[collection] {
		if id, ok := record["id"].(float64); ok && int(id) > max {
			max = int(id)
		}
	}

	s.nextID[collection] = max + 1

	return max + 1
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}

	collection := parts[0]

	s.mu.Lock()
	defer s.mu.Unlock()

	if status, ok := s.failures[r.Method+" "+collection]; ok {
		delete(s.failures, r.Method+" "+collection)
		http.Error(w, "injected failure", status)
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		s.list(w, r, collection)
	case len(parts) == 1 && r.Method == http.MethodPost:
		s.create(w, r, collection)
	case len(parts) == 2:
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			http.NotFound(w, r)
			return
		}

		switch r.Method {
		case http.MethodGet:
			s.get(w, r, collection, id)
		case http.MethodPut:
			s.update(w, r, collection, id)
		case http.MethodDelete:
			s.delete(w, r, collection, id)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) list(w http.ResponseWriter, r *http.Request, collection string) {
	query := r.URL.Query()
	expand := query["_expand"]
	query.Del("_expand")

	var out []map[string]any

	for _, record := range s.collections[collection] {
		matched := true

		for field, values := range query {
			if len(values) > 0 && fmt.Sprint(record[field]) != values[0] {
				matched = false
				break
			}
		}

		if matched {
			out = append(out, s.expanded(record, expand))
		}
	}

	if out == nil {
		out = []map[string]any{}
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request, collection string, id int) {
	record, _ := s.find(collection, id)
	if record == nil {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, s.expanded(record, r.URL.Query()["_expand"]))
}

func (s *Server) create(w http.ResponseWriter, r *http.Request, collection string) {
	var record map[string]any

	err := json.NewDecoder(r.Body).Decode(&record)
	if err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	record["id"] = float64(s.assignID(collection))
	s.collections[collection] = append(s.collections[collection], record)

	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request, collection string, id int) {
	_, i := s.find(collection, id)
	if i < 0 {
		http.NotFound(w, r)
		return
	}

	var record map[string]any

	err := json.NewDecoder(r.Body).Decode(&record)
	if err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	record["id"] = float64(id)
	s.collections[collection][i] = record

	writeJSON(w, http.StatusOK, record)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request, collection string, id int) {
	_, i := s.find(collection, id)
	if i < 0 {
		http.NotFound(w, r)
		return
	}

	s.collections[collection] = append(s.collections[collection][:i], s.collections[collection][i+1:]...)

	w.WriteHeader(http.StatusOK)
}

func (s *Server) find(collection string, id int) (map[string]any, int) {
	for i, record := range s.collections[collection] {
		if rid, ok := record["id"].(float64); ok && int(rid) == id {
			return record, i
		}
	}

	return nil, -1
}

// expanded inlines referenced records: _expand=movie looks up movieId in the
// movies collection and embeds it under "movie".
func (s *Server) expanded(record map[string]any, expand []string) map[string]any {
	if len(expand) == 0 {
		return record
	}

	out := make(map[string]any, len(record)+len(expand))
	for k, v := range record {
		out[k] = v
	}

	for _, rel := range expand {
		refID, ok := record[rel+"Id"].(float64)
		if !ok {
			continue
		}

		if ref, _ := s.find(rel+"s", int(refID)); ref != nil {
			out[rel] = ref
		}
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
