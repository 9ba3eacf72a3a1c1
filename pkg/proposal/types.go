package proposal

// ProposalObject is the structured summary produced by the model for a set
// of business requirements. Field names mirror the headings the prompt
// instructs the model to emit, so the JSON tags carry spaces.
type ProposalObject struct {
	ProposalDescription          string   `json:"Proposal Description,omitempty"`
	RequiredServices             []string `json:"Required Services,omitempty"`
	RequiredSkills               []string `json:"Required Skills,omitempty"`
	RequiredCertifications       []string `json:"Required Certifications,omitempty"`
	RequiredSoftware             string   `json:"Required Software,omitempty"`
	RequiredServiceLine          []string `json:"Required Service Line,omitempty"`
	RequiredLanguage             string   `json:"Required Language,omitempty"`
	RequiredLocationAndTimeZones string   `json:"Required Location and Time Zones,omitempty"`
	RequiredTeams                string   `json:"Required Teams,omitempty"`
	StartEndDates                string   `json:"Start/End Dates,omitempty"`

	// ProvidedDetails is populated by the detail analyzer, not by the
	// proposal prompt itself. It rides along on the draft so the combiner
	// and review view can read it.
	ProvidedDetails map[string]string `json:"provided_details,omitempty"`
}

// Clone returns a shallow copy of the proposal with its own copy of the
// ProvidedDetails map.
func (p *ProposalObject) Clone() *ProposalObject {
	if p == nil {
		return nil
	}
	out := *p
	if p.ProvidedDetails != nil {
		out.ProvidedDetails = make(map[string]string, len(p.ProvidedDetails))
		for k, v := range p.ProvidedDetails {
			out.ProvidedDetails[k] = v
		}
	}
	return &out
}

// AnalysisObject is the structured extraction output of the detail
// analyzer: which required lead details the user already provided, and
// which still have to be asked for.
type AnalysisObject struct {
	ProvidedDetails map[string]string `json:"provided_details"`
	MissingDetails  []string          `json:"missing_details"`
}
