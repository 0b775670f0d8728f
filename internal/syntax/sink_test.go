package syntax

import (
	"sync"
	"testing"
)

func TestChannelSinkOrder(t *testing.T) {
	s := NewChannelSink(4)
	for i := uint32(1); i <= 3; i++ {
		s.Report(Diagnostic{Severity: SeveritySyntax, Msg: "m", Pos: NewPos("Shell", i, 1)})
	}
	s.Close()

	var lines []uint32
	for d := range s.C() {
		lines = append(lines, d.Pos.Line())
	}
	if len(lines) != 3 || lines[0] != 1 || lines[1] != 2 || lines[2] != 3 {
		t.Errorf("received lines %v, want [1 2 3]", lines)
	}
	if s.Dropped() != 0 {
		t.Errorf("Dropped = %d, want 0", s.Dropped())
	}
}

func TestChannelSinkFull(t *testing.T) {
	s := NewChannelSink(1)
	s.Report(Diagnostic{Msg: "first"})
	s.Report(Diagnostic{Msg: "second"})

	if s.Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", s.Dropped())
	}
	if d := <-s.C(); d.Msg != "first" {
		t.Errorf("received %q, want first", d.Msg)
	}
}

func TestChannelSinkClosed(t *testing.T) {
	s := NewChannelSink(0)
	s.Close()
	s.Close()
	s.Report(Diagnostic{Msg: "late"})

	if s.Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", s.Dropped())
	}
	if _, ok := <-s.C(); ok {
		t.Error("channel still open")
	}
}

func TestChannelSinkConcurrent(t *testing.T) {
	const n = 50
	s := NewChannelSink(n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Report(Diagnostic{Msg: "x"})
		}()
	}
	wg.Wait()
	s.Close()

	got := 0
	for range s.C() {
		got++
	}
	if got != n {
		t.Errorf("received %d, want %d", got, n)
	}
}

func TestLexerReportsToChannelSink(t *testing.T) {
	s := NewChannelSink(2)
	if _, err := NewLexer("§", WithSource("Shell"), WithSink(s)).Analyze(); err == nil {
		t.Fatal("expected a lexical error")
	}
	s.Close()

	d, ok := <-s.C()
	if !ok {
		t.Fatal("no diagnostic delivered")
	}
	if d.Severity != SeverityLexical {
		t.Errorf("severity = %s, want %s", d.Severity, SeverityLexical)
	}
	if want := "Lexical Error: '§' is not recognized <-= at Shell:1:1"; d.String() != want {
		t.Errorf("diagnostic = %q, want %q", d.String(), want)
	}
}

func TestBuildOptionsDefaults(t *testing.T) {
	o := buildOptions(nil)
	if o.source != DefaultSource {
		t.Errorf("source = %q, want %q", o.source, DefaultSource)
	}
	if o.sink == nil || o.logger == nil {
		t.Error("defaults not filled in")
	}
}
