package httpadapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/hint"
	"svw.info/steps/internal/infrastructure/storage"
	"svw.info/steps/internal/solver"
	"svw.info/steps/internal/usecase"
	"svw.info/steps/internal/validator"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/viable", h.handleViable)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/solutions", h.handleSolutions)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/game", h.handleGame)
	mux.HandleFunc("/api/game/new", h.handleNewGame)
	mux.HandleFunc("/api/game/place", h.handlePlace)
	mux.HandleFunc("/api/game/lift", h.handleLift)
}

func encode(w http.ResponseWriter, status int, v any) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(v)
}

// decode reads the JSON body into v. An empty body is accepted only when
// optional is set.
func decode(r *http.Request, v any, optional bool) error {
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
	if optional && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformed), errors.Is(err, domain.ErrDuplicateShape):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, solver.ErrNoSolution), errors.Is(err, hint.ErrNoObjective):
		return http.StatusNotFound
	case errors.Is(err, hint.ErrObjectiveMismatch), errors.Is(err, usecase.ErrIllegalMove),
		errors.Is(err, validator.ErrOffBoard), errors.Is(err, validator.ErrCollision), errors.Is(err, validator.ErrStacked):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

type errorResp struct {
	Error string `json:"error"`
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != method {
		encode(w, http.StatusMethodNotAllowed, errorResp{Error: "method not allowed"})
		return false
	}
	return true
}

func rows(b domain.Board) []string {
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

func strs(ps []domain.Piece) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

// ---- Validate ----

type validateReq struct {
	Placement string `json:"placement"`
}
type validateResp struct {
	OK     bool     `json:"ok"`
	Failed int      `json:"failed"`
	Piece  string   `json:"piece,omitempty"`
	Reason string   `json:"reason,omitempty"`
	Board  []string `json:"board,omitempty"`
	Error  string   `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req validateReq
	if err := decode(r, &req, false); err != nil {
		encode(w, http.StatusBadRequest, validateResp{Failed: -1, Error: "invalid JSON: " + err.Error()})
		return
	}
	rep, err := h.UC.Validate(r.Context(), req.Placement)
	if err != nil {
		encode(w, statusFor(err), validateResp{Failed: -1, Error: err.Error()})
		return
	}
	resp := validateResp{OK: rep.OK, Failed: rep.Failed, Piece: rep.Piece, Reason: rep.Reason, Board: rows(rep.Board)}
	if !rep.OK && rep.Failed < 0 {
		// malformed input never reached the board
		encode(w, http.StatusBadRequest, resp)
		return
	}
	encode(w, http.StatusOK, resp)
}

// ---- Viable ----

type viableReq struct {
	Prefix    string `json:"prefix"`
	Objective string `json:"objective"`
}
type viableResp struct {
	Pieces []string `json:"pieces"`
	Error  string   `json:"error,omitempty"`
}

func (h *Handler) handleViable(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req viableReq
	if err := decode(r, &req, false); err != nil {
		encode(w, http.StatusBadRequest, viableResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ps, err := h.UC.Viable(r.Context(), req.Prefix, req.Objective)
	if err != nil {
		encode(w, statusFor(err), viableResp{Error: err.Error()})
		return
	}
	encode(w, http.StatusOK, viableResp{Pieces: strs(ps)})
}

// ---- Hint ----

type idReq struct {
	ID string `json:"id"`
}
type hintResp struct {
	Found    bool     `json:"found"`
	Piece    string   `json:"piece,omitempty"`
	Viable   []string `json:"viable,omitempty"`
	Solution string   `json:"solution,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req idReq
	if err := decode(r, &req, false); err != nil || req.ID == "" {
		encode(w, http.StatusBadRequest, hintResp{Error: "invalid JSON or missing id"})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.ID)
	if err != nil {
		encode(w, statusFor(err), hintResp{Error: err.Error()})
		return
	}
	if !ok {
		encode(w, http.StatusOK, hintResp{Solution: hh.Solution})
		return
	}
	encode(w, http.StatusOK, hintResp{Found: true, Piece: hh.Piece.String(), Viable: strs(hh.Viable), Solution: hh.Solution})
}

// ---- Solutions / Solve ----

type prefixReq struct {
	Prefix string `json:"prefix"`
}
type solutionsResp struct {
	Solutions []string `json:"solutions"`
	Count     int      `json:"count"`
	Error     string   `json:"error,omitempty"`
}

func (h *Handler) handleSolutions(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req prefixReq
	if err := decode(r, &req, true); err != nil {
		encode(w, http.StatusBadRequest, solutionsResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	sols, err := h.UC.Solutions(r.Context(), req.Prefix)
	if err != nil {
		encode(w, statusFor(err), solutionsResp{Error: err.Error()})
		return
	}
	encode(w, http.StatusOK, solutionsResp{Solutions: sols, Count: len(sols)})
}

type solveResp struct {
	Placement  string `json:"placement,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req prefixReq
	if err := decode(r, &req, true); err != nil {
		encode(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	out, st, err := h.UC.Solve(r.Context(), req.Prefix)
	if err != nil {
		encode(w, statusFor(err), solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	encode(w, http.StatusOK, solveResp{Placement: out.String(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Games ----

type gameView struct {
	ID         string   `json:"id"`
	Difficulty string   `json:"difficulty"`
	Seed       int64    `json:"seed,omitempty"`
	Initial    string   `json:"initial"`
	Current    string   `json:"current"`
	Solved     bool     `json:"solved"`
	NotPlaced  []string `json:"notPlaced"`
	Movable    []string `json:"movable"`
	Board      []string `json:"board"`
}

func view(g *domain.Game) *gameView {
	v := &gameView{
		ID:         g.ID,
		Difficulty: g.Difficulty.String(),
		Seed:       g.Seed,
		Initial:    g.Initial.String(),
		Current:    g.Current.String(),
		Solved:     g.Solved(),
		NotPlaced:  []string{},
		Movable:    []string{},
	}
	for _, s := range hint.NotPlaced(g.Current) {
		v.NotPlaced = append(v.NotPlaced, s.String())
	}
	for _, p := range g.Current {
		if !g.Fixed(p.Shape) && validator.Removable(g.Current, p.Shape) {
			v.Movable = append(v.Movable, p.Shape.String())
		}
	}
	var b domain.Board
	_, _ = validator.Replay(&b, g.Current)
	v.Board = rows(b)
	return v
}

type gameResp struct {
	Game       *gameView `json:"game,omitempty"`
	DurationMs int64     `json:"durationMs,omitempty"`
	Error      string    `json:"error,omitempty"`
}

func (h *Handler) handleGame(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		encode(w, http.StatusBadRequest, gameResp{Error: "missing id"})
		return
	}
	g, err := h.UC.Game(r.Context(), id)
	if err != nil {
		encode(w, statusFor(err), gameResp{Error: err.Error()})
		return
	}
	encode(w, http.StatusOK, gameResp{Game: view(g)})
}

type newGameReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req newGameReq
	if err := decode(r, &req, true); err != nil {
		encode(w, http.StatusBadRequest, gameResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	diff, ok := domain.ParseDifficulty(req.Difficulty)
	if !ok {
		encode(w, http.StatusBadRequest, gameResp{Error: "unknown difficulty " + req.Difficulty})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, st, err := h.UC.NewGame(r.Context(), seed, diff)
	if err != nil {
		encode(w, statusFor(err), gameResp{Error: err.Error()})
		return
	}
	encode(w, http.StatusOK, gameResp{Game: view(g), DurationMs: st.Duration.Milliseconds()})
}

type placeReq struct {
	ID    string `json:"id"`
	Piece string `json:"piece"`
}

func (h *Handler) handlePlace(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req placeReq
	if err := decode(r, &req, false); err != nil || req.ID == "" {
		encode(w, http.StatusBadRequest, gameResp{Error: "invalid JSON or missing id"})
		return
	}
	g, err := h.UC.Place(r.Context(), req.ID, req.Piece)
	if err != nil {
		encode(w, statusFor(err), gameResp{Error: err.Error()})
		return
	}
	encode(w, http.StatusOK, gameResp{Game: view(g)})
}

type liftReq struct {
	ID    string `json:"id"`
	Shape string `json:"shape"`
}

func (h *Handler) handleLift(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req liftReq
	if err := decode(r, &req, false); err != nil || req.ID == "" {
		encode(w, http.StatusBadRequest, gameResp{Error: "invalid JSON or missing id"})
		return
	}
	if len(req.Shape) != 1 || req.Shape[0] < 'A' || req.Shape[0] >= 'A'+domain.ShapeCount {
		encode(w, http.StatusBadRequest, gameResp{Error: "shape must be a letter A-H"})
		return
	}
	g, err := h.UC.Lift(r.Context(), req.ID, domain.Shape(req.Shape[0]-'A'))
	if err != nil {
		encode(w, statusFor(err), gameResp{Error: err.Error()})
		return
	}
	encode(w, http.StatusOK, gameResp{Game: view(g)})
}
