package main

import (
	"path/filepath"
	"testing"

	"github.com/danmuck/obswire/internal/profile"
	"github.com/danmuck/obswire/internal/testutil/testlog"
)

func TestResolveProfilePrefersExplicitURL(t *testing.T) {
	testlog.Start(t)

	p, err := resolveProfile("ws://localhost:4455/pw", "unused.toml", "local")
	if err != nil {
		t.Fatalf("resolveProfile: %v", err)
	}
	if p.Host != "localhost" || p.Password != "pw" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestResolveProfileFallsBackToNamedStore(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.toml")
	store, err := profile.LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	store.Put("studio", profile.Profile{Scheme: "ws", Host: "studio.local", Port: 4455})
	if err := store.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p, err := resolveProfile("", path, "studio")
	if err != nil {
		t.Fatalf("resolveProfile: %v", err)
	}
	if p.Host != "studio.local" {
		t.Fatalf("got host=%q want=studio.local", p.Host)
	}
}

func TestResolveProfileErrorsOnMissingName(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.toml")

	if _, err := resolveProfile("", path, "nonexistent"); err == nil {
		t.Fatal("expected an error for a missing profile name")
	}
}
