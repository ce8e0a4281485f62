package harness

import "strings"

// FilterByPrefix returns the tests whose name starts with prefix, keeping
// their order. An empty prefix selects every test.
func FilterByPrefix(tests []Test, prefix string) []Test {
	filtered := make([]Test, 0, len(tests))
	for _, test := range tests {
		if strings.HasPrefix(test.Name, prefix) {
			filtered = append(filtered, test)
		}
	}
	return filtered
}
