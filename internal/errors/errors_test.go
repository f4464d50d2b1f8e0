package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "toast provider",
			code:    "E001",
			wantMsg: "Toast provider missing",
			wantCat: CategoryRuntime,
		},
		{
			name:    "protocol error",
			code:    "E020",
			wantMsg: "Invalid protocol message",
			wantCat: CategoryProtocol,
		},
		{
			name:    "config error",
			code:    "E141",
			wantMsg: "Configuration file not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryComponent, "unknown size %q", "xxl")
	if err.Message != `unknown size "xxl"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryComponent {
		t.Errorf("Category = %q, want %q", err.Category, CategoryComponent)
	}
}

func TestVangoError_Error(t *testing.T) {
	err := New("E001")
	if got, want := err.Error(), "E001: Toast provider missing"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := New("E120").Wrap(fmt.Errorf("permission denied"))
	if got, want := wrapped.Error(), "E120: Configuration file unreadable: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := &VangoError{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}
}

func TestVangoError_Builders(t *testing.T) {
	err := New("E122").
		WithDetailf("toast.maxToasts must be positive, got %d", -1).
		WithSuggestion("Set maxToasts to 5")

	if err.Detail != "toast.maxToasts must be positive, got -1" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion != "Set maxToasts to 5" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

func TestVangoError_IsAndUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := fmt.Errorf("export: %w", New("E150").Wrap(cause))

	if !stderrors.Is(err, New("E150")) {
		t.Error("errors.Is should match by code")
	}
	if stderrors.Is(err, New("E151")) {
		t.Error("errors.Is should not match a different code")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if Code(err) != "E150" {
		t.Errorf("Code = %q, want E150", Code(err))
	}
	if Code(cause) != "" {
		t.Error("Code of a plain error should be empty")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E150") != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New("E141")
	if got := FromError(fmt.Errorf("ctx: %w", orig), "E150"); got != orig {
		t.Error("FromError should return the existing VangoError")
	}

	got := FromError(stderrors.New("boom"), "E151")
	if got.Code != "E151" || got.Wrapped == nil {
		t.Errorf("FromError = %+v", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E141").WithSuggestion("Pass --config").Wrap(stderrors.New("stat vangoui.json: no such file"))
	formatted := err.Format()

	for _, want := range []string{
		"ERROR E141: Configuration file not found",
		"No vangoui.json was found",
		"Cause: stat vangoui.json: no such file",
		"Hint: Pass --config",
		"Learn more: https://vango.dev/docs/ui/errors/E141",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format missing %q:\n%s", want, formatted)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E122").WithDetail("toast.position")
	if got, want := err.FormatCompact(), "E122: Configuration value out of range (toast.position)"; got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	json := New("E020").FormatJSON()
	for _, want := range []string{`"code":"E020"`, `"category":"protocol"`, `"message":"Invalid protocol message"`} {
		if !strings.Contains(json, want) {
			t.Errorf("FormatJSON missing %s: %s", want, json)
		}
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, New("E011"))
	if !strings.Contains(buf.String(), "E011: Session closed") {
		t.Errorf("Fprint coded = %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, stderrors.New("plain"))
	if !strings.Contains(buf.String(), "ERROR: plain") {
		t.Errorf("Fprint plain = %q", buf.String())
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) < 12 {
		t.Fatalf("expected at least 12 codes, got %d", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
}

func TestRegister(t *testing.T) {
	Register("E900", ErrorTemplate{Category: CategoryRuntime, Message: "Custom"})
	defer delete(registry, "E900")

	tmpl, ok := GetTemplate("E900")
	if !ok || tmpl.Message != "Custom" {
		t.Errorf("GetTemplate(E900) = %+v, %v", tmpl, ok)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six" {
		t.Errorf("wrapText lost words: %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should wrap to nil")
	}
}
