package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_JSONOutput(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})
	log.Info().Str("account_id", "a1").Msg("login routed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["service"] != DefaultService {
		t.Errorf("expected service %q, got %v", DefaultService, entry["service"])
	}
	if entry["account_id"] != "a1" || entry["message"] != "login routed" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Output: &first, Service: "first"})
	log := Init(Options{Output: &second, Service: "second"})
	log.Info().Msg("hello")

	if second.Len() != 0 {
		t.Errorf("second Init must not replace the logger")
	}
	if !bytes.Contains(first.Bytes(), []byte(`"service":"first"`)) {
		t.Errorf("expected first logger to be used, got %q", first.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Get()
}

func TestComponent_TagsEntries(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Output: &buf})
	log := Component("role_router")
	log.Warn().Msg("role mismatch")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "role_router" || entry["service"] != DefaultService {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestGet_ReturnsInitialisedLogger(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Level: "error", Output: &buf})
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
	log := Get()
	log.Info().Msg("filtered")
	log.Error().Msg("kept")

	if bytes.Contains(buf.Bytes(), []byte("filtered")) || !bytes.Contains(buf.Bytes(), []byte("kept")) {
		t.Errorf("expected level from Init to apply, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
