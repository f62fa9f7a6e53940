package matcalc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEvaluate(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  Matrix
	}{
		"literal": {
			input: "[1,2,3;4,5,6;7,8,9]",
			want:  Matrix{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		"multiply binds tighter than add": {
			input: "[1,0,0;0,1,0;0,0,1] + [1,0,0;0,1,0;0,0,1] * [2,0,0;0,2,0;0,0,2]",
			want:  Matrix{3, 0, 0, 0, 3, 0, 0, 0, 3},
		},
		"transpose binds tighter than multiply": {
			input: "t[1,2,3;4,5,6;7,8,9] * [1,0,0;0,1,0;0,0,1]",
			want:  Matrix{1, 4, 7, 2, 5, 8, 3, 6, 9},
		},
		"grouping overrides precedence": {
			input: "t([1,0,0;0,1,0;0,0,1] + [0,1,0;0,0,1;1,0,0])",
			want:  Matrix{1, 0, 1, 1, 1, 0, 0, 1, 1},
		},
		"transpose of second operand only": {
			input: "[1,2,3;4,5,6;7,8,9] + t[0,1,0;0,0,1;1,0,0]",
			want:  Matrix{1, 2, 4, 5, 5, 6, 7, 9, 9},
		},
		"subtraction is left associative": {
			input: "[9,9,9;9,9,9;9,9,9] - [1,1,1;1,1,1;1,1,1] - [2,2,2;2,2,2;2,2,2]",
			want:  Matrix{6, 6, 6, 6, 6, 6, 6, 6, 6},
		},
		"negative entries": {
			input: "[-1,-2,-3;-4,-5,-6;-7,-8,-9]-[-1,-2,-3;-4,-5,-6;-7,-8,-9]",
			want:  Matrix{},
		},
		"double transpose": {
			input: "tt[1,2,3;4,5,6;7,8,9]",
			want:  Matrix{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		"product chain": {
			input: "[1,2,3;4,5,6;7,8,9] * [9,8,7;6,5,4;3,2,1] * [1,0,0;0,1,0;0,0,1]",
			want:  Matrix{30, 24, 18, 84, 69, 54, 138, 114, 90},
		},
		"multiline input": {
			input: "[1,2,3;\n4,5,6;\n7,8,9]\n+\n[1,1,1;1,1,1;1,1,1]\n",
			want:  Matrix{2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := Evaluate(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	_, err := Evaluate("[1,2;3,4,5;6,7,8]")
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("want *SyntaxError but got %v", err)
	}

	_, err = Evaluate("[1,2,3;4,5,6;7,8,9] @ [1,2,3;4,5,6;7,8,9]")
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Errorf("want *LexError but got %v", err)
	} else if lerr.Char != '@' {
		t.Errorf("want '@' but got %q", lerr.Char)
	}
}

func TestEvaluateRoundTrip(t *testing.T) {
	for _, m := range randomMatrices(16) {
		got, err := Evaluate(m.String())
		if err != nil {
			t.Errorf("%v: %v", m, err)
			continue
		}
		if got != m {
			t.Errorf("want %v but got %v", m, got)
		}
	}
}

func TestEval(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.mat")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no test files")
	}

	for _, fn := range fns {
		t.Log(fn)
		b, err := os.ReadFile(fn)
		if err != nil {
			t.Fatal(err)
		}
		base := strings.TrimSuffix(fn, ".mat")
		m, err := EvaluateReader(bytes.NewReader(b))
		if err != nil {
			b, err2 := os.ReadFile(base + ".err")
			if err2 != nil || err.Error() != strings.TrimSpace(string(b)) {
				t.Error(err)
			}
			continue
		}
		var buf bytes.Buffer
		if err := Encode(&buf, m, FormatLiteral); err != nil {
			t.Fatal(err)
		}
		got := buf.String()
		b, err = os.ReadFile(base + ".out")
		if err != nil {
			t.Fatal(err)
		}
		want := string(b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: %s", fn, diff)
		}
	}
}
