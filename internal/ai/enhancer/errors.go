package enhancer

import "errors"

var (
	errEmptyOutput  = errors.New("enhancer: provider returned empty text")
	errFencedOutput = errors.New("enhancer: provider returned a code block")
)
