package autogrid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSizes(t *testing.T) {
	type tc struct {
		text     string
		expected []Value
	}

	tests := map[string]tc{
		"mixed list": {
			text:     "100,*,2*,Auto",
			expected: []Value{Fixed(100), Star(1), Star(2), Auto()},
		},
		"non-numeric token is auto": {
			text:     "abc",
			expected: []Value{Auto()},
		},
		"invalid weight defaults to one": {
			text:     "x*",
			expected: []Value{Star(1)},
		},
		"whitespace is trimmed": {
			text:     " 10 , 1.5* , auto ",
			expected: []Value{Fixed(10), Star(1.5), Auto()},
		},
		"empty entries are auto": {
			text:     "5,,*",
			expected: []Value{Fixed(5), Auto(), Star(1)},
		},
		"non-finite numbers fall back": {
			text:     "NaN,Inf,Inf*,-Infinity*",
			expected: []Value{Auto(), Auto(), Star(1), Star(1)},
		},
		"large finite number stays fixed": {
			text:     "1e20",
			expected: []Value{Fixed(1e20)},
		},
		"empty input is nil": {
			text:     "",
			expected: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseSizes(tt.text)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseSizes(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestFormatSizes(t *testing.T) {
	got := FormatSizes(ParseSizes("100, *,2*, Auto ,junk,0.5*"))
	if want := "100,*,2*,Auto,Auto,0.5*"; got != want {
		t.Errorf("FormatSizes() = %q, want %q", got, want)
	}
}
