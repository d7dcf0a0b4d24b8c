package prompt

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestHuhConfirm_MapsUserAbort(t *testing.T) {
	orig := runFormFunc
	runFormFunc = func(form *huh.Form) error { return huh.ErrUserAborted }
	t.Cleanup(func() { runFormFunc = orig })

	_, err := NewHuhUI().Confirm("Continue?", true)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestHuhSelect_ReturnsValue(t *testing.T) {
	orig := runFormFunc
	runFormFunc = func(form *huh.Form) error { return nil }
	t.Cleanup(func() { runFormFunc = orig })

	got, err := NewHuhUI().Select("Release track", []string{"edge", "stable"}, "edge")
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if got != "edge" {
		t.Fatalf("expected untouched default, got %q", got)
	}
}

func TestHuhConfirm_PropagatesOtherErrors(t *testing.T) {
	orig := runFormFunc
	boom := errors.New("render failed")
	runFormFunc = func(form *huh.Form) error { return boom }
	t.Cleanup(func() { runFormFunc = orig })

	_, err := NewHuhUI().Confirm("Continue?", true)
	if !errors.Is(err, boom) {
		t.Fatalf("expected render error, got %v", err)
	}
}

type stubUI struct {
	confirmAnswer bool
	confirmErr    error
	confirmTitles []string
}

func (s *stubUI) Confirm(title string, def bool) (bool, error) {
	s.confirmTitles = append(s.confirmTitles, title)
	return s.confirmAnswer, s.confirmErr
}

func (s *stubUI) Select(title string, options []string, def string) (string, error) {
	return def, nil
}

func (s *stubUI) AwaitEnter(title string) error { return nil }

func TestConfirmMode_SkipBypassesPrompt(t *testing.T) {
	ui := &stubUI{confirmAnswer: false}
	if err := ConfirmMode(ui, true, "brewblox-ctl install"); err != nil {
		t.Fatalf("ConfirmMode error: %v", err)
	}
	if len(ui.confirmTitles) != 0 {
		t.Fatalf("expected no prompt when skipping, got %v", ui.confirmTitles)
	}
}

func TestConfirmMode_DeclineAborts(t *testing.T) {
	ui := &stubUI{confirmAnswer: false}
	err := ConfirmMode(ui, false, "brewblox-ctl install")
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestConfirmMode_AcceptContinues(t *testing.T) {
	ui := &stubUI{confirmAnswer: true}
	if err := ConfirmMode(ui, false, "brewblox-ctl install"); err != nil {
		t.Fatalf("ConfirmMode error: %v", err)
	}
}
