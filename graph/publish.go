// Package graph publishes converted documents to the knowledge graph.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/semsbom/export"
	"github.com/c360studio/semsbom/spdx"
)

// IngestSubject is the default subject for graph ingestion.
const IngestSubject = "sbom.graph.ingest.entity"

// tripleSource tags every published statement with the producing tool.
const tripleSource = "semsbom"

// Triple is one statement of an entity message. Each term carries its
// N-Triples form so consumers need no node typing of their own.
type Triple struct {
	Subject    string    `json:"subject"`
	Predicate  string    `json:"predicate"`
	Object     string    `json:"object"`
	Source     string    `json:"source"`
	Timestamp  time.Time `json:"timestamp"`
	Confidence float64   `json:"confidence"`
}

// EntityIngestMessage is the message format for graph ingestion.
type EntityIngestMessage struct {
	ID        string    `json:"id"`
	Triples   []Triple  `json:"triples"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityMessage builds the ingest message for a document from its
// canonical graph. A nil exporter uses the default catalog and logger.
func EntityMessage(e *export.Exporter, doc *spdx.Document, now time.Time) (*EntityIngestMessage, error) {
	if e == nil {
		e = export.NewExporter(nil, nil)
	}
	g, err := e.Graph(doc)
	if err != nil {
		return nil, err
	}

	triples := make([]Triple, 0, g.Len())
	for _, t := range g.Triples() {
		triples = append(triples, Triple{
			Subject:    t.Subject.NTriples(),
			Predicate:  t.Predicate.NTriples(),
			Object:     t.Object.NTriples(),
			Source:     tripleSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}

	return &EntityIngestMessage{
		ID:        doc.Namespace + "#" + doc.SPDXID,
		Triples:   triples,
		UpdatedAt: now,
	}, nil
}

// Publisher sends entity messages over NATS.
type Publisher struct {
	conn     *nats.Conn
	subject  string
	exporter *export.Exporter
	logger   *slog.Logger
}

// NewPublisher creates a publisher. A nil conn yields a publisher whose
// PublishDocument is a no-op, so callers without NATS configured need
// no branching. An empty subject uses IngestSubject.
func NewPublisher(conn *nats.Conn, subject string, exporter *export.Exporter, logger *slog.Logger) *Publisher {
	if subject == "" {
		subject = IngestSubject
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{conn: conn, subject: subject, exporter: exporter, logger: logger}
}

// PublishDocument publishes the canonical triples of a document.
func (p *Publisher) PublishDocument(ctx context.Context, doc *spdx.Document) error {
	if p == nil || p.conn == nil {
		return nil
	}

	msg, err := EntityMessage(p.exporter, doc, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("build entity message: %w", err)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal entity message: %w", err)
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish entity: %w", err)
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush publish: %w", err)
	}

	p.logger.Info("Published document to graph",
		slog.String("subject", p.subject),
		slog.String("id", msg.ID),
		slog.Int("triples", len(msg.Triples)))
	return nil
}
