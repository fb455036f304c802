package types

import "regexp"

// idPattern matches lowercase alphanumeric identifiers with hyphens
var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
