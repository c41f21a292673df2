package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/domain"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/usage"
)

// messageRequest is a page message delivered over HTTP, the sender is part of the body
type messageRequest struct {
	Type  domain.MessageType `json:"type"`
	TabID domain.TabID       `json:"tabId"`
	URL   string             `json:"url"`
}

// patternView is a domain usage pattern with its current importance score
type patternView struct {
	Domain string  `json:"domain"`
	Score  float64 `json:"score"`
	domain.UsagePattern
}

// statusHandler returns server and engine status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"engine":  s.engine.Status(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// getSettingsHandler returns the live settings
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.engine.Settings())
}

// updateSettingsHandler merges the request body over the live settings and stores the result.
// Fields missing in the body keep their values.
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings := s.engine.Settings()
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		renderError(w, r, fmt.Errorf("invalid settings: %w", err), http.StatusBadRequest)
		return
	}
	if err := validateSettings(&settings); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.engine.SaveSettings(r.Context(), settings); err != nil {
		lgr.Printf("[ERROR] failed to save settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, s.engine.Settings())
}

// patternsHandler returns usage patterns ordered by importance, most important first
func (s *Server) patternsHandler(w http.ResponseWriter, r *http.Request) {
	patterns := s.engine.UsagePatterns()
	res := make([]patternView, 0, len(patterns))
	for host, p := range patterns {
		res = append(res, patternView{Domain: host, Score: usage.Importance(p), UsagePattern: p})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Score != res[j].Score {
			return res[i].Score > res[j].Score
		}
		return res[i].Domain < res[j].Domain
	})
	renderJSON(w, r, http.StatusOK, res)
}

// messageHandler dispatches a page message and waits for asynchronous replies
func (s *Server) messageHandler(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid message: %w", err), http.StatusBadRequest)
		return
	}

	reply := s.engine.HandleMessage(r.Context(), domain.Message{Type: req.Type}, domain.Sender{TabID: req.TabID, URL: req.URL})
	switch reply.Kind {
	case domain.ReplyUnhandled:
		renderError(w, r, fmt.Errorf("unsupported message type %q", req.Type), http.StatusBadRequest)
		return
	case domain.ReplyAsync:
		v, err := reply.Wait(r.Context())
		if err != nil {
			renderError(w, r, err, http.StatusGatewayTimeout)
			return
		}
		renderJSON(w, r, http.StatusOK, v)
		return
	}

	if reply.Value == nil {
		renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	renderJSON(w, r, http.StatusOK, reply.Value)
}

// unloadHandler runs a manual sweep
func (s *Server) unloadHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.UnloadInactiveNow(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] manual unload failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// validateSettings rejects values the engine can't work with and normalizes excluded domains
func validateSettings(s *domain.Settings) error {
	if s.InactivityThreshold < time.Minute {
		return errors.New("inactivityThreshold must be at least one minute")
	}
	if s.MaxHibernatedTabs < 0 {
		return errors.New("maxHibernatedTabs must be non-negative")
	}
	if s.LearningPeriodDuration < 0 {
		return errors.New("learningPeriodDuration must be non-negative")
	}

	domains := s.ExcludedDomains
	s.ExcludedDomains = nil
	for _, d := range domains {
		if norm := usage.NormalizeDomain(d); norm != "" {
			s.AddExcludedDomains(norm)
		}
	}
	return nil
}
