package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/godataurl/internal/grammar"
)

func TestSplitURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		input       any
		wantSpec    string
		wantPayload string
		wantErr     error
	}{
		{"empty", "", "", "", grammar.ErrEmptyInput},
		{"nil bytes", []byte(nil), "", "", grammar.ErrEmptyInput},
		{"no prefix", "jibberisch", "", "", grammar.ErrMalformedInput},
		{"short input", "dat", "", "", grammar.ErrMalformedInput},
		{"prefix only", "data:", "", "", grammar.ErrMalformedInput},
		{"no comma", "data:text/plain;base64", "", "", grammar.ErrMalformedInput},
		{"minimal", "data:,", "", "", nil},
		{"upper prefix", "DATA:text/plain,abc", "text/plain", "abc", nil},
		{"mixed prefix", "dAtA:,abc", "", "abc", nil},
		{"spec and payload", "data:text/plain;base64,aGk=", "text/plain;base64", "aGk=", nil},
		{"first comma wins", "data:text/plain,a,b,c", "text/plain", "a,b,c", nil},
		{"payload kept literal", "data:text/plain,a%20b+c", "text/plain", "a%20b+c", nil},
		{"bytes input", []byte("data:text/plain,abc"), "text/plain", "abc", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var (
				spec, payload string
				err           error
			)
			switch in := c.input.(type) {
			case string:
				spec, payload, err = grammar.SplitURL(in)
			case []byte:
				spec, payload, err = grammar.SplitURL(in)
			}
			if c.wantErr != nil {
				if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
					t.Errorf("grammar.SplitURL(%v) error = %v, want %v\ndiff (-got +want):\n%v",
						c.input, err, c.wantErr, diff,
					)
				}
				return
			}
			if err != nil {
				t.Fatalf("grammar.SplitURL(%v) error = %v, want nil", c.input, err)
			}
			if spec != c.wantSpec {
				t.Errorf("grammar.SplitURL(%v) spec = %q, want %q", c.input, spec, c.wantSpec)
			}
			if payload != c.wantPayload {
				t.Errorf("grammar.SplitURL(%v) payload = %q, want %q", c.input, payload, c.wantPayload)
			}
		})
	}
}
