package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/luxebid/luxebid/pkg/model"
)

// printFieldErrors surfaces per-field validation messages next to the
// field name, the way a form shows them inline. Reports whether the
// error carried any.
func printFieldErrors(err error) bool {
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Fields) == 0 {
		return false
	}

	fields := make([]string, 0, len(apiErr.Fields))
	for f := range apiErr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		for _, msg := range apiErr.Fields[f] {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", f, msg)
		}
	}
	return true
}
