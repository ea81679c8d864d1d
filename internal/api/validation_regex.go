package api

import "regexp"

var plantStatusRegex = regexp.MustCompile(`^(alive|dead|given-away|sold)$`)
