package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/biteshare/internal/common"
)

// describe turns a command error into the line shown to the user.
func describe(err error) string {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		names := make([]string, 0, len(verr.Fields))
		for name := range verr.Fields {
			names = append(names, name)
		}
		sort.Strings(names)

		var b strings.Builder
		b.WriteString("Please fix the following:")
		for _, name := range names {
			fmt.Fprintf(&b, "\n  - %s %s", name, verr.Fields[name])
		}
		return b.String()
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, common.ErrUnauthenticated):
		return "Please sign in first."
	case errors.Is(err, common.ErrForbidden):
		return "Access denied: " + strings.TrimPrefix(err.Error(), common.ErrForbidden.Error()+": ")
	case errors.Is(err, common.ErrAlreadyExists):
		return "An account with this email already exists."
	case errors.Is(err, common.ErrNotFound):
		return "Not found."
	}
	return "Error: " + err.Error()
}
