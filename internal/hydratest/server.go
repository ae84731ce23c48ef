// Package hydratest serves a small fixture Hydra API for tests: a base
// URL advertising its documentation through a Link header, the
// documentation itself, an entry point and an event collection.
package hydratest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"evalgo.org/hydralink/models"
)

// ContentType is the media type the fixture API serves.
const ContentType = "application/ld+json"

// Server is a fixture Hydra API bound to an ephemeral port.
type Server struct {
	srv *httptest.Server
}

// New starts a fixture API. Callers must Close it.
func New() *Server {
	s := &Server{}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/", s.handleBase)
	e.GET("/doc", s.handleDocumentation)
	e.GET("/doc-bare", s.handleBareDocumentation)
	e.GET("/entry", s.handleEntryPoint)
	e.GET("/events", s.handleEvents)
	e.GET("/plain", s.handlePlain)
	e.GET("/relative", s.handleRelativeLink)
	e.GET("/bare", s.handleBareBase)
	e.GET("/csv", s.handleCSV)

	s.srv = httptest.NewServer(e)
	return s
}

// URL returns the server's base URL.
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

// EventIRI returns the identity of the fixture event resource.
func (s *Server) EventIRI() string {
	return s.URL() + "/events/1"
}

// CollectionIRI returns the identity of the fixture collection.
func (s *Server) CollectionIRI() string {
	return s.URL() + "/events"
}

func (s *Server) handleBase(c echo.Context) error {
	c.Response().Header().Set("Link",
		fmt.Sprintf(`<%s/doc>; rel="%s"`, s.URL(), models.RelAPIDocumentation))
	return s.jsonLD(c, map[string]any{"@id": s.URL() + "/"})
}

// handleRelativeLink advertises the documentation with a relative URL,
// which clients must resolve against the base.
func (s *Server) handleRelativeLink(c echo.Context) error {
	c.Response().Header().Set("Link",
		fmt.Sprintf(`</doc>; rel="%s"`, models.RelAPIDocumentation))
	return s.jsonLD(c, map[string]any{"@id": s.URL() + "/relative"})
}

// handleBareBase advertises documentation that defines no entry point.
func (s *Server) handleBareBase(c echo.Context) error {
	c.Response().Header().Set("Link",
		fmt.Sprintf(`<%s/doc-bare>; rel="%s"`, s.URL(), models.RelAPIDocumentation))
	return s.jsonLD(c, map[string]any{"@id": s.URL() + "/bare"})
}

// handlePlain carries no Link header at all.
func (s *Server) handlePlain(c echo.Context) error {
	return s.jsonLD(c, map[string]any{"@id": s.URL() + "/plain"})
}

func (s *Server) handleCSV(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/csv", []byte("id,name\n1,event\n"))
}

func (s *Server) handleDocumentation(c echo.Context) error {
	return s.jsonLD(c, map[string]any{
		"@id":   s.URL() + "/doc",
		"@type": []any{models.TypeAPIDocumentation},
		models.PropEntryPoint: []any{
			map[string]any{"@id": s.URL() + "/entry"},
		},
	})
}

func (s *Server) handleBareDocumentation(c echo.Context) error {
	return s.jsonLD(c, map[string]any{
		"@id":   s.URL() + "/doc-bare",
		"@type": []any{models.TypeAPIDocumentation},
	})
}

func (s *Server) handleEntryPoint(c echo.Context) error {
	return s.jsonLD(c, map[string]any{
		"@id":   s.URL() + "/entry",
		"@type": []any{models.TypeEntryPoint},
		"http://example.org/vocab#events": []any{
			map[string]any{"@id": s.CollectionIRI()},
		},
	})
}

// handleEvents serves a named graph holding one collection with a
// single event member.
func (s *Server) handleEvents(c echo.Context) error {
	return s.jsonLD(c, map[string]any{
		"@id": s.URL() + "/graphs/events",
		"@graph": []any{
			map[string]any{
				"@id":   s.CollectionIRI(),
				"@type": []any{models.TypeCollection},
				models.PropTotalItems: []any{
					map[string]any{"@value": 1},
				},
				models.PropMember: []any{
					map[string]any{"@id": s.EventIRI()},
				},
			},
			map[string]any{
				"@id":   s.EventIRI(),
				"@type": []any{"http://schema.org/Event"},
				"http://schema.org/name": []any{
					map[string]any{"@value": "Launch party"},
				},
				"http://schema.org/startDate": []any{
					map[string]any{"@value": "2026-09-01T18:00:00Z"},
				},
				"http://schema.org/endDate": []any{
					map[string]any{"@value": "2026-09-01T23:00:00Z"},
				},
				"http://schema.org/location": []any{
					map[string]any{"@value": "Basel"},
				},
			},
		},
	})
}

func (s *Server) jsonLD(c echo.Context, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, ContentType, data)
}
