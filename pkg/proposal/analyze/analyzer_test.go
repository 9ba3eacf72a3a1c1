package analyze

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"ai-proposal-be/pkg/llm"
	"ai-proposal-be/pkg/proposal"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type stubProvider struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestNormalizeMissing(t *testing.T) {
	tests := []struct {
		name    string
		missing []string
		want    []string
	}{
		{
			name:    "empty stays empty",
			missing: nil,
			want:    nil,
		},
		{
			name:    "source order preserved",
			missing: []string{"Industry", "Annual Revenue"},
			want:    []string{"Industry", "Annual Revenue"},
		},
		{
			name:    "duplicates collapse",
			missing: []string{"Industry", "Industry", "Entity Type", "Industry"},
			want:    []string{"Industry", "Entity Type"},
		},
		{
			name:    "unknown names pass through",
			missing: []string{"Fiscal Quarter", "Industry", "Budget Range"},
			want:    []string{"Fiscal Quarter", "Industry", "Budget Range"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMissing(tt.missing)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeMissing(%v) = %v, want %v", tt.missing, got, tt.want)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	provider := &stubProvider{
		reply: `Here is my analysis: {"provided_details":{"Industry":"Consulting"},"missing_details":["Industry","Annual Revenue"]}`,
	}
	analyzer := NewAnalyzer(provider, nopLogger{})

	draft := &proposal.ProposalObject{ProposalDescription: "Tax services"}
	analysis, err := analyzer.Analyze(context.Background(), "we are a consulting firm", draft)
	if err != nil {
		t.Fatalf("Analyze() unexpected error: %v", err)
	}

	if analysis.ProvidedDetails["Industry"] != "Consulting" {
		t.Errorf("ProvidedDetails = %v, want Industry=Consulting", analysis.ProvidedDetails)
	}
	want := []string{"Industry", "Annual Revenue"}
	if !reflect.DeepEqual(analysis.MissingDetails, want) {
		t.Errorf("MissingDetails = %v, want %v", analysis.MissingDetails, want)
	}

	// The prompt must carry the user input, the draft, and the required
	// field catalogue.
	for _, fragment := range []string{"we are a consulting firm", "Tax services", "Annual Revenue"} {
		if !strings.Contains(provider.lastPrompt, fragment) {
			t.Errorf("prompt is missing %q", fragment)
		}
	}
}

func TestAnalyzeNilProvidedDetails(t *testing.T) {
	provider := &stubProvider{reply: `{"missing_details":[]}`}
	analyzer := NewAnalyzer(provider, nopLogger{})

	analysis, err := analyzer.Analyze(context.Background(), "input", &proposal.ProposalObject{})
	if err != nil {
		t.Fatalf("Analyze() unexpected error: %v", err)
	}
	if analysis.ProvidedDetails == nil {
		t.Error("ProvidedDetails is nil, want empty map")
	}
}

func TestAnalyzeModelFailure(t *testing.T) {
	provider := &stubProvider{reply: "nothing structured here"}
	analyzer := NewAnalyzer(provider, nopLogger{})

	_, err := analyzer.Analyze(context.Background(), "input", &proposal.ProposalObject{})
	if err == nil {
		t.Fatal("Analyze() accepted a reply without a JSON object")
	}
	if err.Error() != "No JSON object found in model response" {
		t.Errorf("error = %q, want the no-JSON-object message", err.Error())
	}
}
