package parser

import (
	"errors"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		wantErr   error
		wantName  string
		wantCount int
	}{
		{
			name:      "bare object",
			reply:     `{"name":"alpha","count":2}`,
			wantName:  "alpha",
			wantCount: 2,
		},
		{
			name:      "prose before object",
			reply:     `Sure! Here is the result: {"name":"beta","count":7}`,
			wantName:  "beta",
			wantCount: 7,
		},
		{
			name:    "empty reply",
			reply:   "",
			wantErr: ErrEmptyResponse,
		},
		{
			name:    "whitespace only",
			reply:   "   \n\t  ",
			wantErr: ErrEmptyResponse,
		},
		{
			name:    "no object at all",
			reply:   "I could not produce a proposal for that input.",
			wantErr: ErrNoJSONObject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			err := ExtractObject(tt.reply, &got)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExtractObject() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractObject() unexpected error: %v", err)
			}
			if got.Name != tt.wantName || got.Count != tt.wantCount {
				t.Errorf("ExtractObject() = %+v, want name=%q count=%d", got, tt.wantName, tt.wantCount)
			}
		})
	}
}

func TestExtractObjectTruncatedJSON(t *testing.T) {
	var got payload
	err := ExtractObject(`Here you go: {"name":"gamma",`, &got)
	if err == nil {
		t.Fatal("ExtractObject() accepted truncated JSON")
	}
	if errors.Is(err, ErrEmptyResponse) || errors.Is(err, ErrNoJSONObject) {
		t.Errorf("truncated JSON mapped to the wrong sentinel: %v", err)
	}
}

// The exact message strings are part of the API contract.
func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrEmptyResponse, "Empty response from the model"},
		{ErrNoJSONObject, "No JSON object found in model response"},
		{ParseError(errors.New("unexpected end of JSON input")), "JSON parsing error: unexpected end of JSON input"},
		{Exception(errors.New("connection refused")), "Exception occurred: connection refused"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("error message = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}
