// Package registry holds the fixed set of lead details a finalized
// proposal requires, paired with the question used to elicit each one.
package registry

import "fmt"

type leadField struct {
	Name     string
	Question string
}

// Declaration order is the question-asking order, so it must stay stable.
var requiredLeadDetails = []leadField{
	{"Annual Revenue", "What is the approximate annual revenue of your business?"},
	{"Industry", "Which industry does your business operate in?"},
	{"Entity Type", "What is the entity type of your business (e.g., LLC, Corporation)?"},
	{"Publicly Traded", "Is your business publicly traded or privately held?"},
	{"Primary Accounting Software", "What is the primary accounting software your business uses (e.g., QuickBooks, Xero)?"},
	{"Months to Clean-Up", "How many months of bookkeeping clean-up are needed?"},
	{"Year to Be Filed", "Which financial year do you want to file taxes for?"},
	{"States to File Taxes", "Which states do you need to file taxes in?"},
}

var questionByName map[string]string

func init() {
	questionByName = make(map[string]string, len(requiredLeadDetails))
	for _, f := range requiredLeadDetails {
		if _, dup := questionByName[f.Name]; dup {
			panic(fmt.Sprintf("registry: duplicate lead field %q", f.Name))
		}
		questionByName[f.Name] = f.Question
	}
}

// Question returns the elicitation question for a field name.
func Question(name string) (string, bool) {
	q, ok := questionByName[name]
	return q, ok
}

// FieldNames returns all required field names in declaration order.
func FieldNames() []string {
	names := make([]string, len(requiredLeadDetails))
	for i, f := range requiredLeadDetails {
		names[i] = f.Name
	}
	return names
}

// Contains reports whether name is a required lead field.
func Contains(name string) bool {
	_, ok := questionByName[name]
	return ok
}
