package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	type tc struct {
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}

	tests := map[string]tc{
		"example": {
			args:       []string{"example"},
			wantStdout: "rect: 15, 27, 55, 86\n",
		},
		"offset-to matches example": {
			args:       []string{"offset-to", "10", "14", "50", "73", "15", "27"},
			wantStdout: "rect: 15, 27, 55, 86\n",
		},
		"offset": {
			args:       []string{"offset", "10", "14", "50", "73", "5", "13"},
			wantStdout: "rect: 15, 27, 55, 86\n",
		},
		"offset negative delta": {
			args:       []string{"offset", "0", "0", "10", "10", "-5", "-2.5"},
			wantStdout: "rect: -5, -2.5, 5, 7.5\n",
		},
		"offset-to inverted": {
			args:       []string{"offset-to", "50", "73", "10", "14", "0", "0"},
			wantStdout: "rect: 0, 0, -40, -59\n",
		},
		"offset-to nan target": {
			args:       []string{"offset-to", "0", "0", "10", "10", "NaN", "1"},
			wantStdout: "rect: NaN, 1, NaN, 11\n",
		},
		"verbose": {
			args:       []string{"offset-to", "-v", "10", "14", "50", "73", "15", "27"},
			wantStdout: "before: 10, 14, 50, 73 (40 x 59)\nrect: 15, 27, 55, 86\nsize: 40 x 59\n",
		},
		"version": {
			args:       []string{"version"},
			wantStdout: "rect version " + version + "\n",
		},
		"too few values": {
			args:       []string{"offset", "1", "2", "3"},
			wantCode:   1,
			wantStderr: "error: offset expects L T R B DX DY, got 3 values\n",
		},
		"bad number": {
			args:       []string{"offset-to", "1", "2", "3", "4", "five", "6"},
			wantCode:   1,
			wantStderr: "error: offset-to: argument 5:",
		},
		"out of range": {
			args:       []string{"offset", "1e40", "0", "0", "0", "0", "0"},
			wantCode:   1,
			wantStderr: "error: offset: argument 1:",
		},
		"unknown command": {
			args:       []string{"scale"},
			wantCode:   1,
			wantStderr: "unknown command: scale",
		},
		"no command": {
			args:       nil,
			wantCode:   1,
			wantStderr: "Usage:",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("RECT_DEBUG", "")
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)
			if code != tt.wantCode {
				t.Errorf("run(%q) = %d, want %d (stderr %q)", tt.args, code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestParseArgs_Verbose(t *testing.T) {
	verbose, vals, err := parseArgs("offset", []string{"1", "2", "3", "4", "5", "6", "--verbose"}, "L T R B DX DY")
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !verbose {
		t.Errorf("verbose = false, want true")
	}
	if vals != [6]float32{1, 2, 3, 4, 5, 6} {
		t.Errorf("vals = %v, want [1 2 3 4 5 6]", vals)
	}
}
