package i18n

import "errors"

var (
	ErrFailedToParseYAML  = errors.New("failed to parse message catalog YAML")
	ErrNoMessages         = errors.New("message catalog is empty")
	ErrInvalidLanguageTag = errors.New("invalid language tag")
)
