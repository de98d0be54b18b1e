package profile

import (
	"path/filepath"
	"testing"

	"github.com/danmuck/obswire/internal/testutil/testlog"
)

func TestParseURLWithPassword(t *testing.T) {
	testlog.Start(t)

	p, err := ParseURL("ws://localhost:4455/supersecret")
	if err != nil {
		t.Fatalf("ParseURL: %v", err)
	}
	if p.Scheme != "ws" || p.Host != "localhost" || p.Port != 4455 || p.Password != "supersecret" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestParseURLDefaultsPort(t *testing.T) {
	testlog.Start(t)

	p, err := ParseURL("wss://obs.example.com")
	if err != nil {
		t.Fatalf("ParseURL: %v", err)
	}
	if p.Port != 4443 {
		t.Fatalf("got port=%d want=4443", p.Port)
	}
}

func TestParseURLRejectsUnsupportedScheme(t *testing.T) {
	testlog.Start(t)

	if _, err := ParseURL("http://localhost:4455"); err == nil {
		t.Fatal("expected an error for an http scheme")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.toml")

	s, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore (missing file): %v", err)
	}
	if len(s.Profiles) != 0 {
		t.Fatalf("expected empty store for missing file, got %d entries", len(s.Profiles))
	}

	s.Put("studio", Profile{Scheme: "ws", Host: "localhost", Port: 4455, Password: "pw"})
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	got, ok := reloaded.Get("studio")
	if !ok {
		t.Fatal("expected studio profile to round-trip")
	}
	if got.Host != "localhost" || got.Port != 4455 || got.Password != "pw" {
		t.Fatalf("unexpected reloaded profile: %+v", got)
	}
}

func TestWriteTemplateRefusesToOverwriteByDefault(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.toml")

	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("first WriteTemplate: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatal("expected second WriteTemplate without overwrite to fail")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("WriteTemplate with overwrite: %v", err)
	}
}
