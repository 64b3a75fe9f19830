package httpadapter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"svw.info/steps/assets"
	"svw.info/steps/internal/generator"
	"svw.info/steps/internal/hint"
	"svw.info/steps/internal/infrastructure/storage"
	"svw.info/steps/internal/solver"
	"svw.info/steps/internal/usecase"
	"svw.info/steps/internal/validator"
)

const fullGame = "BGSAHQEFBGCgCDNHFlDAiFHn"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	corpus := storage.NewCorpus("", assets.Files)
	bt := solver.NewBacktrackingSolver()
	lookup := solver.NewLookup(corpus, bt)
	uc := usecase.NewService(validator.New(), hint.NewHinter(lookup, bt, 1), lookup, lookup,
		generator.NewCorpusGenerator(corpus, lookup), storage.NewMemoryGames())
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string, out any) int {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestValidateHandler(t *testing.T) {
	srv := newServer(t)
	cases := []struct {
		body   string
		status int
		ok     bool
		failed int
		reason string
	}{
		{`{"placement":"` + fullGame + `"}`, http.StatusOK, true, -1, ""},
		{`{"placement":"AALBCL"}`, http.StatusOK, false, 1, validator.ErrCollision.Error()},
		{`{"placement":"AAA"}`, http.StatusOK, false, 0, validator.ErrOffBoard.Error()},
		{`{"placement":"AA"}`, http.StatusBadRequest, false, -1, ""},
		{`not json`, http.StatusBadRequest, false, -1, ""},
	}
	for _, c := range cases {
		var got validateResp
		status := post(t, srv, "/api/validate", c.body, &got)
		if status != c.status || got.OK != c.ok || got.Failed != c.failed {
			t.Fatalf("%s: status=%d resp=%+v", c.body, status, got)
		}
		if c.reason != "" && got.Reason != c.reason {
			t.Fatalf("%s: reason %q want %q", c.body, got.Reason, c.reason)
		}
	}

	var got validateResp
	post(t, srv, "/api/validate", `{"placement":"AAL"}`, &got)
	if len(got.Board) != 5 || got.Board[0] != "bUx......." {
		t.Fatalf("board: %v", got.Board)
	}
}

func TestViableHandler(t *testing.T) {
	srv := newServer(t)
	var got viableResp
	if status := post(t, srv, "/api/viable", `{"prefix":"BGS","objective":"`+fullGame+`"}`, &got); status != http.StatusOK {
		t.Fatalf("status %d: %+v", status, got)
	}
	if strings.Join(got.Pieces, ",") != "AHQ,EFB" {
		t.Fatalf("got %v", got.Pieces)
	}

	got = viableResp{}
	if status := post(t, srv, "/api/viable", `{"prefix":"AAL","objective":"`+fullGame+`"}`, &got); status != http.StatusConflict || got.Error == "" {
		t.Fatalf("mismatch: status %d %+v", status, got)
	}

	got = viableResp{}
	post(t, srv, "/api/viable", `{"prefix":"BGSGCg","objective":"`+fullGame+`"}`, &got)
	if got.Pieces == nil || len(got.Pieces) != 0 {
		t.Fatalf("expected an empty list, got %#v", got.Pieces)
	}
}

func TestSolveAndSolutionsHandlers(t *testing.T) {
	srv := newServer(t)
	var sols solutionsResp
	if status := post(t, srv, "/api/solutions", `{"prefix":"AALCGOEBQDES"}`, &sols); status != http.StatusOK || sols.Count == 0 {
		t.Fatalf("solutions: %d %+v", status, sols)
	}
	var all solutionsResp
	post(t, srv, "/api/solutions", `{}`, &all)
	if all.Count != 120 {
		t.Fatalf("empty prefix should list the whole corpus, got %d", all.Count)
	}

	var solved solveResp
	if status := post(t, srv, "/api/solve", `{"prefix":"BGSGCg"}`, &solved); status != http.StatusOK {
		t.Fatalf("solve: %d %+v", status, solved)
	}
	if !strings.HasPrefix(solved.Placement, "BGSGCg") || !validator.IsPlacementSequenceValid(solved.Placement) || len(solved.Placement) != 24 {
		t.Fatalf("bad completion %q", solved.Placement)
	}
	if status := post(t, srv, "/api/solve", `{"prefix":"AALBCL"}`, &solved); status != http.StatusConflict {
		t.Fatalf("illegal prefix: %d", status)
	}
}

func TestGameHandlers(t *testing.T) {
	srv := newServer(t)

	var created gameResp
	if status := post(t, srv, "/api/game/new", `{"difficulty":"junior","seed":3}`, &created); status != http.StatusOK || created.Game == nil {
		t.Fatalf("new game: %d %+v", status, created)
	}
	g := created.Game
	if g.Difficulty != "junior" || len(g.Initial) != 15 || g.Current != g.Initial || len(g.NotPlaced) != 3 || len(g.Movable) != 0 {
		t.Fatalf("unexpected game %+v", g)
	}

	var hr hintResp
	if status := post(t, srv, "/api/hint", `{"id":"`+g.ID+`"}`, &hr); status != http.StatusOK || !hr.Found {
		t.Fatalf("hint: %d %+v", status, hr)
	}

	var placed gameResp
	if status := post(t, srv, "/api/game/place", `{"id":"`+g.ID+`","piece":"`+hr.Piece+`"}`, &placed); status != http.StatusOK {
		t.Fatalf("place: %d %+v", status, placed)
	}
	if placed.Game.Current != g.Initial+hr.Piece || len(placed.Game.Movable) != 1 || placed.Game.Movable[0] != hr.Piece[:1] {
		t.Fatalf("after place: %+v", placed.Game)
	}

	resp, err := http.Get(srv.URL + "/api/game?id=" + g.ID)
	if err != nil {
		t.Fatal(err)
	}
	var fetched gameResp
	_ = sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&fetched)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || fetched.Game.Current != placed.Game.Current {
		t.Fatalf("get: %d %+v", resp.StatusCode, fetched)
	}

	var lifted gameResp
	if status := post(t, srv, "/api/game/lift", `{"id":"`+g.ID+`","shape":"`+g.Initial[:1]+`"}`, &lifted); status != http.StatusConflict {
		t.Fatalf("lifting a dealt piece: %d %+v", status, lifted)
	}
	if status := post(t, srv, "/api/game/lift", `{"id":"`+g.ID+`","shape":"`+hr.Piece[:1]+`"}`, &lifted); status != http.StatusOK || lifted.Game.Current != g.Initial {
		t.Fatalf("lift: %d %+v", status, lifted)
	}
	if status := post(t, srv, "/api/game/lift", `{"id":"`+g.ID+`","shape":"Z"}`, nil); status != http.StatusBadRequest {
		t.Fatalf("bad shape: %d", status)
	}
}

func TestGameErrors(t *testing.T) {
	srv := newServer(t)
	if status := post(t, srv, "/api/game/place", `{"id":"nope","piece":"AAL"}`, nil); status != http.StatusNotFound {
		t.Fatalf("unknown game: %d", status)
	}
	if status := post(t, srv, "/api/game/new", `{"difficulty":"impossible"}`, nil); status != http.StatusBadRequest {
		t.Fatalf("bad difficulty: %d", status)
	}
	if status := post(t, srv, "/api/hint", `{}`, nil); status != http.StatusBadRequest {
		t.Fatalf("missing id: %d", status)
	}
	resp, err := http.Get(srv.URL + "/api/validate")
	if err != nil {
		t.Fatal(err)
	}
	var body validateResp
	decErr := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET validate: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("GET validate content type %q", ct)
	}
	if decErr != nil || body.Error != "method not allowed" {
		t.Fatalf("GET validate body: %+v err=%v", body, decErr)
	}
}
