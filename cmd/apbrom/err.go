package main

import (
	"github.com/ezrec/apbrom/translate"
)

var ErrDefineMalformed = translate.Error("malformed definition")
