package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"glootie_zed/internal/shared/types"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":       zerolog.InfoLevel,
		"debug":  zerolog.DebugLevel,
		" WARN ": zerolog.WarnLevel,
		"error":  zerolog.ErrorLevel,
		"bogus":  zerolog.InfoLevel,
		"info":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(types.LogConf{Level: "warn"}, &buf); err != nil {
		t.Fatalf("InitWithWriter failed: %v", err)
	}

	Info().Msg("hidden")
	Error().Str("key", "value").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("error message missing: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(types.LogConf{Level: "debug"}, &buf); err != nil {
		t.Fatal(err)
	}
	l := WithComponent("extension")
	l.Debug().Msg("hello")
	if !strings.Contains(buf.String(), "component=extension") {
		t.Errorf("component field missing: %q", buf.String())
	}
}

func TestInitWithWriter_NilOutput(t *testing.T) {
	if err := InitWithWriter(types.LogConf{}, nil); err == nil {
		t.Fatal("expected an error for nil output")
	}
}

func TestInit_ConcurrentWithReaders(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				if err := InitWithWriter(types.LogConf{Level: "debug"}, io.Discard); err != nil {
					return err
				}
			}
			return nil
		})
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				l := WithComponent("extension")
				l.Debug().Msg("tick")
				Info().Bool("tick", true).Msg("tick")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
