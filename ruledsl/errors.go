package ruledsl

import "fmt"

var (
	errUnclosedString   = fmt.Errorf("unclosed string literal")
	errIncompleteEscape = fmt.Errorf("incomplete escape sequence")
	errEmptyString      = fmt.Errorf("empty string literal")
	errNoRuleName       = fmt.Errorf("expected a rule name")
	errNoEquals         = fmt.Errorf(`expected "="`)
	errNoSemicolon      = fmt.Errorf(`expected ";"`)
	errNoCallbackName   = fmt.Errorf(`expected a callback name after "->"`)
	errUnexpectedToken  = fmt.Errorf("unexpected token")
)
