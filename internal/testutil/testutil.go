// Package testutil provides test helpers for apphost tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/appmodel/apphost/internal/builder"
	"github.com/appmodel/apphost/internal/model"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// QdrantConnectionString is the expression used by the fixture graph.
const QdrantConnectionString = "Endpoint={http.scheme}://{http.host}:{http.port};Key={qdrant-Key.value}"

// NewQdrantGraph builds the canonical fixture: a qdrant container with grpc
// and rest endpoints, an API key parameter, and a parameter-backed env entry.
// keyValue configures the parameter value; empty generates a secret default.
func NewQdrantGraph(t *testing.T, keyValue string) *model.Graph {
	t.Helper()

	b := builder.New()
	key := b.AddParameter("qdrant-Key", keyValue, true)
	b.AddContainer("qdrant", "qdrant/qdrant", "v1.13.0").
		WithEndpoint("http", 6334, builder.WithScheme("http"), builder.WithTransport("http2")).
		WithHTTPEndpoint("rest", 6333).
		WithEnvironmentParameter("QDRANT__SERVICE__API_KEY", key).
		WithConnectionString(QdrantConnectionString)

	graph, err := b.Build()
	if err != nil {
		t.Fatalf("building fixture graph: %v", err)
	}
	return graph
}
