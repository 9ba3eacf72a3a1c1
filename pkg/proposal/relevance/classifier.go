// Package relevance gates the detail-collection flow on whether the
// user's requirements mention tax work at all.
package relevance

import "strings"

// Keyword containment, not semantic classification. "detaxify" matches
// "tax" and that is accepted; the gate only decides whether the Q&A flow
// is worth running.
var taxKeywords = []string{"tax", "filing", "tax preparation", "tax filing"}

// IsTaxRelated reports whether the input mentions tax services.
func IsTaxRelated(input string) bool {
	lower := strings.ToLower(input)
	for _, keyword := range taxKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
