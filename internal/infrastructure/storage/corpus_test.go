package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"svw.info/steps/assets"
)

func TestCorpusEmbedded(t *testing.T) {
	c := NewCorpus("", assets.Files)
	sols, err := c.Solutions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(sols) != 120 || sols[0] != "AALCGOEBQDESBEgHBiGAnFHk" {
		t.Fatalf("unexpected solutions: %d first=%v", len(sols), sols[:1])
	}
	start, err := c.Starting(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(start) != 30 || start[0] != "BGKHANFFPEGSCAgDBc" {
		t.Fatalf("unexpected starting list: %d", len(start))
	}
}

func TestCorpusDirOverridesAndFilters(t *testing.T) {
	dir := t.TempDir()
	content := "BGSAHQEFBGCgCDNHFlDAiFHn\n\nAALBCL\nnot-a-placement\nBGSAHQ\n  AALCGOEBQDESBEgHBiGAnFHk  \n"
	if err := os.WriteFile(filepath.Join(dir, SolutionsFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fallback := fstest.MapFS{
		SolutionsFile: {Data: []byte("AALCGOEBQDESBEgHBiGAnFHk\n")},
		StartingFile:  {Data: []byte("BGS\nBGSAHQEFBGCgCDNHFlDAiFHn\nAAA\n")},
	}
	c := NewCorpus(dir, fallback)
	sols, err := c.Solutions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"BGSAHQEFBGCgCDNHFlDAiFHn", "AALCGOEBQDESBEgHBiGAnFHk"}
	if len(sols) != len(want) || sols[0] != want[0] || sols[1] != want[1] {
		t.Fatalf("got %v want %v", sols, want)
	}
	start, _ := c.Starting(context.Background())
	if len(start) != 1 || start[0] != "BGS" {
		t.Fatalf("starting: got %v", start)
	}
}

func TestCorpusMissing(t *testing.T) {
	c := NewCorpus(t.TempDir(), nil)
	if _, err := c.Solutions(context.Background()); err == nil {
		t.Fatal("expected an error without any source")
	}
}

func TestCorpusCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewCorpus("", assets.Files)
	if _, err := c.Solutions(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("solutions: expected context.Canceled, got %v", err)
	}
	if _, err := c.Starting(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("starting: expected context.Canceled, got %v", err)
	}
	// a canceled call does not spoil later loads
	if sols, err := c.Solutions(context.Background()); err != nil || len(sols) == 0 {
		t.Fatalf("after cancel: %d %v", len(sols), err)
	}
}
