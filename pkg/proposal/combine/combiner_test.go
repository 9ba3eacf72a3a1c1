package combine

import (
	"reflect"
	"testing"

	"ai-proposal-be/pkg/proposal"
)

func TestCombineNilDraft(t *testing.T) {
	got := Combine(nil, map[string]string{"Industry": "Consulting"})
	if got == nil {
		t.Fatal("Combine(nil, ...) returned nil")
	}
	if got.ProvidedDetails == nil || len(got.ProvidedDetails) != 0 {
		t.Errorf("ProvidedDetails = %v, want empty map", got.ProvidedDetails)
	}
}

func TestCombineCopiesDraft(t *testing.T) {
	draft := &proposal.ProposalObject{
		ProposalDescription: "Tax services",
		RequiredServices:    []string{"Tax Filing"},
		ProvidedDetails:     map[string]string{"Industry": "Consulting"},
	}

	got := Combine(draft, map[string]string{"Annual Revenue": "$500k"})

	if got == draft {
		t.Fatal("Combine returned the draft itself, want a copy")
	}
	if got.ProposalDescription != draft.ProposalDescription {
		t.Errorf("ProposalDescription = %q", got.ProposalDescription)
	}

	// The draft's own details ride along; the collected answers do not
	// (they feed the downstream re-invocation instead).
	want := map[string]string{"Industry": "Consulting"}
	if !reflect.DeepEqual(got.ProvidedDetails, want) {
		t.Errorf("ProvidedDetails = %v, want %v", got.ProvidedDetails, want)
	}

	got.ProvidedDetails["Industry"] = "mutated"
	if draft.ProvidedDetails["Industry"] != "Consulting" {
		t.Error("mutating the combined object leaked into the draft")
	}
}

func TestCombineDeterministic(t *testing.T) {
	draft := &proposal.ProposalObject{ProposalDescription: "x"}
	collected := map[string]string{"Industry": "Consulting"}

	first := Combine(draft, collected)
	second := Combine(draft, collected)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Combine is not deterministic: %+v vs %+v", first, second)
	}
}
