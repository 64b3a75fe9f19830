package validator

import (
	"context"
	"errors"

	"svw.info/steps/internal/domain"
)

// FastValidator is the ports.Validator backed by the replay engine.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate replays placement and reports the outcome. Malformed input and
// illegal moves are reported in the Report; err is only set when ctx is done.
func (v *FastValidator) Validate(ctx context.Context, placement string) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}
	rep := domain.Report{Failed: -1}
	pieces, err := domain.ParsePlacement(placement)
	if err != nil {
		rep.Reason = err.Error()
		return rep, nil
	}
	i, err := Replay(&rep.Board, pieces)
	if err != nil {
		rep.Failed = i
		rep.Piece = pieces[i].String()
		rep.Reason = reason(err)
		// Show the board as the accepted prefix left it.
		rep.Board = domain.Board{}
		_, _ = Replay(&rep.Board, pieces[:i])
		return rep, nil
	}
	rep.OK = true
	return rep, nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrOffBoard):
		return ErrOffBoard.Error()
	case errors.Is(err, ErrStacked):
		return ErrStacked.Error()
	case errors.Is(err, ErrCollision):
		return ErrCollision.Error()
	default:
		return err.Error()
	}
}
