package schema

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse rule descriptor YAML")
	ErrFailedToParseJSON = errors.New("failed to parse rule descriptor JSON")
	ErrNoFields          = errors.New("rule descriptor declares no fields")
	ErrInvalidRuleValue  = errors.New("invalid rule value")
	ErrInvalidPattern    = errors.New("invalid pattern expression")
	ErrUnknownCustomRule = errors.New("unknown custom rule")
)
