// Package combine produces the finalized response from the draft proposal
// and the collected details.
package combine

import "ai-proposal-be/pkg/proposal"

// Combine returns a shallow copy of the draft with its ProvidedDetails
// replaced by a fresh copy of the draft's own provided details.
//
// NOTE: the collected/edited details are intentionally NOT folded into
// ProvidedDetails here; edits reach the output through the
// generator/analyzer re-invocation on confirm. See DESIGN.md.
func Combine(draft *proposal.ProposalObject, collected map[string]string) *proposal.ProposalObject {
	if draft == nil {
		return &proposal.ProposalObject{ProvidedDetails: map[string]string{}}
	}
	combined := draft.Clone()
	if combined.ProvidedDetails == nil {
		combined.ProvidedDetails = map[string]string{}
	}
	return combined
}
