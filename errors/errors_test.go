package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorRendering(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "phase and kind only",
			err:  &Error{Phase: PhaseResolve, Kind: KindNotFound},
			want: "[resolve] not_found",
		},
		{
			name: "with path",
			err: &Error{
				Phase: PhaseParse,
				Kind:  KindInvalidData,
				Path:  []string{"canon", "options"},
			},
			want: "[parse] invalid_data at canon.options",
		},
		{
			name: "with detail",
			err: &Error{
				Phase:  PhaseResolve,
				Kind:   KindNotFound,
				Detail: `type "17" not found`,
			},
			want: `[resolve] not_found: type "17" not found`,
		},
		{
			name: "with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidData,
				Detail: "parse canon section",
				Cause:  stderrors.New("unexpected EOF"),
			},
			want: "[parse] invalid_data: parse canon section (caused by: unexpected EOF)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseValidate, KindUnsupported).
		Path("use-site", "0").
		Detail("op kind 0x%02x", 0xff).
		Build()

	if err.Phase != PhaseValidate {
		t.Errorf("Phase = %q, want %q", err.Phase, PhaseValidate)
	}
	if err.Kind != KindUnsupported {
		t.Errorf("Kind = %q, want %q", err.Kind, KindUnsupported)
	}
	if len(err.Path) != 2 || err.Path[0] != "use-site" {
		t.Errorf("Path = %v", err.Path)
	}
	if !strings.Contains(err.Detail, "0xff") {
		t.Errorf("Detail = %q, want formatted hex", err.Detail)
	}
}

func TestIsMatchesPhaseAndKind(t *testing.T) {
	a := NotFound(PhaseResolve, "type", "3")
	b := &Error{Phase: PhaseResolve, Kind: KindNotFound}

	if !stderrors.Is(a, b) {
		t.Error("errors with same phase and kind should match")
	}

	c := &Error{Phase: PhaseParse, Kind: KindNotFound}
	if stderrors.Is(a, c) {
		t.Error("errors with different phases should not match")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("short read")
	err := ParseFailed("canon section", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
		sub  string
	}{
		{"NotFound", NotFound(PhaseResolve, "type", "9"), KindNotFound, `type "9" not found`},
		{"OutOfBounds", OutOfBounds(PhaseResolve, nil, 10, 5), KindOutOfBounds, "index 10 out of bounds (length 5)"},
		{"InvalidData", InvalidData(PhaseParse, nil, "bad vec count"), KindInvalidData, "bad vec count"},
		{"Unsupported", Unsupported(PhaseParse, "gc option"), KindUnsupported, "gc option"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.sub) {
				t.Errorf("Error() = %q, want substring %q", tt.err.Error(), tt.sub)
			}
		})
	}
}
