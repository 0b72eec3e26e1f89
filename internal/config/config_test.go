package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	yaml := `
server:
  port: "9090"
  mode: "release"
log:
  level: "debug"
  format: "json"
minio:
  endpoint: "minio:9000"
  bucket_name: "docs"
embedding:
  model: "text-embedding-3-small"
  dimensions: 1536
search:
  base_url: "https://example.com/search"
  api_key_env: "SEARCH_API_KEY"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	Init(path)

	if Conf.Server.Port != "9090" || Conf.Server.Mode != "release" {
		t.Errorf("server = %+v", Conf.Server)
	}
	if Conf.MinIO.BucketName != "docs" {
		t.Errorf("minio bucket = %q", Conf.MinIO.BucketName)
	}
	if Conf.Embedding.Dimensions != 1536 {
		t.Errorf("embedding dimensions = %d", Conf.Embedding.Dimensions)
	}
	if Conf.Search.APIKeyEnv != "SEARCH_API_KEY" {
		t.Errorf("search api_key_env = %q", Conf.Search.APIKeyEnv)
	}
}

func TestInit_MissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing config file")
		}
	}()
	Init(filepath.Join(t.TempDir(), "nope.yaml"))
}
