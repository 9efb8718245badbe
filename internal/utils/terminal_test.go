package utils

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestPromptForInput(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		def        string
		want       string
		wantPrompt string
		wantErr    bool
	}{
		{"Answer", "Jane Smith\n", "", "Jane Smith", "User name: ", false},
		{"TrimmedAnswer", "  Jane  \n", "", "Jane", "User name: ", false},
		{"DefaultUsed", "\n", "Jane", "Jane", "User name [Jane]: ", false},
		{"NoTrailingNewline", "Jane", "", "Jane", "User name: ", false},
		{"EOFWithoutInput", "", "", "", "User name: ", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := PromptForInput(bufio.NewReader(strings.NewReader(tc.input)), &out, "User name", tc.def)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			if out.String() != tc.wantPrompt {
				t.Errorf("prompt = %q, want %q", out.String(), tc.wantPrompt)
			}
		})
	}
}
