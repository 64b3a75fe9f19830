package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	if err := SetupWriter(&buf, "warn", "json"); err != nil {
		t.Fatal(err)
	}
	log.Info().Msg("hidden")
	log.Warn().Str("module", "test").Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"module":"test"`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSetupRejectsBadInput(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	if err := SetupWriter(&buf, "loud", "json"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
	if err := SetupWriter(&buf, "info", "xml"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}
