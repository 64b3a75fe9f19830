package storage

import (
	"context"
	"errors"
	"testing"

	"svw.info/steps/internal/domain"
)

func TestMemoryGamesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryGames()
	initial, _ := domain.ParseTokens("BGS")
	g := &domain.Game{Difficulty: domain.Expert, Initial: initial, Current: append(domain.Placement(nil), initial...)}

	id, err := s.Create(ctx, g)
	if err != nil || id == "" || g.ID != id {
		t.Fatalf("create: id=%q err=%v", id, err)
	}
	loaded, err := s.Load(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	next, _ := domain.ParsePiece("AHQ")
	loaded.Current = append(loaded.Current, next)

	again, _ := s.Load(ctx, id)
	if again.Current.String() != "BGS" {
		t.Fatalf("store shares memory with callers: %s", again.Current)
	}
	if err := s.Save(ctx, loaded); err != nil {
		t.Fatal(err)
	}
	again, _ = s.Load(ctx, id)
	if again.Current.String() != "BGSAHQ" || again.Initial.String() != "BGS" || again.Difficulty != domain.Expert {
		t.Fatalf("unexpected game after save: %+v", again)
	}
}

func TestMemoryGamesUnknown(t *testing.T) {
	s := NewMemoryGames()
	if _, err := s.Load(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Save(context.Background(), &domain.Game{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Save(context.Background(), &domain.Game{}); err == nil {
		t.Fatal("expected an error for a game without id")
	}
}
