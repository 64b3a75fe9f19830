package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/hint"
)

var difficulty string

func init() {
	checkCmd := &cobra.Command{
		Use:   "check <placement>",
		Short: "Replay a placement and show the board",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	viableCmd := &cobra.Command{
		Use:   "viable <prefix> <objective>",
		Short: "List the next pieces that keep the objective reachable",
		Long: `List the pieces of objective that can be played after prefix so that the
rest of objective can still follow in some order.

Examples:
  steps viable "" BGSAHQEFBGCgCDNHFlDAiFHn
  steps viable BGS BGSAHQEFBGCgCDNHFlDAiFHn`,
		Args: cobra.ExactArgs(2),
		RunE: runViable,
	}
	solveCmd := &cobra.Command{
		Use:   "solve [prefix]",
		Short: "Complete a placement to all eight pieces",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	solutionsCmd := &cobra.Command{
		Use:   "solutions [prefix]",
		Short: "List known solutions starting with prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolutions,
	}
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Deal a starting position",
		Args:  cobra.NoArgs,
		RunE:  runStart,
	}
	startCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "starter", "starter|junior|expert|master|wizard")

	rootCmd.AddCommand(checkCmd, viableCmd, solveCmd, solutionsCmd, startCmd)
}

func optional(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runCheck(cmd *cobra.Command, args []string) error {
	rep, err := newService(cfg).Validate(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch {
	case rep.OK:
		fmt.Fprintln(out, "valid")
	case rep.Failed < 0:
		return fmt.Errorf("malformed placement: %s", rep.Reason)
	default:
		fmt.Fprintf(out, "invalid: piece %d (%s): %s\n", rep.Failed, rep.Piece, rep.Reason)
	}
	fmt.Fprint(out, rep.Board.String())
	if !rep.OK {
		return fmt.Errorf("placement rejected")
	}
	return nil
}

func runViable(cmd *cobra.Command, args []string) error {
	ps, err := newService(cfg).Viable(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	if len(ps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no viable move")
		return nil
	}
	tokens := make([]string, len(ps))
	for i, p := range ps {
		tokens[i] = p.String()
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tokens, " "))
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.SolveTimeout)
	defer cancel()
	p, st, err := newService(cfg).Solve(ctx, optional(args))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), p.String())
	fmt.Fprintf(cmd.ErrOrStderr(), "nodes=%d dur=%v\n", st.Nodes, st.Duration)
	return nil
}

func runSolutions(cmd *cobra.Command, args []string) error {
	sols, err := newService(cfg).Solutions(cmd.Context(), optional(args))
	if err != nil {
		return err
	}
	for _, s := range sols {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d solution(s)\n", len(sols))
	return nil
}

func runStart(cmd *cobra.Command, args []string) error {
	d, ok := domain.ParseDifficulty(difficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", difficulty)
	}
	g, _, err := newService(cfg).NewGame(cmd.Context(), cfg.SeedOrClock(), d)
	if err != nil {
		return err
	}
	missing := hint.NotPlaced(g.Current)
	names := make([]string, len(missing))
	for i, s := range missing {
		names[i] = s.String()
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", g.Initial, g.Difficulty)
	fmt.Fprintf(out, "to place: %s\n", strings.Join(names, " "))
	return nil
}
