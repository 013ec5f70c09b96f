package metadata

/*
	ErrorCause is a closed, canonical classification used exclusively for
	observability (logging, reporting).

	Rules:
	 - ErrorCause MUST NOT influence control flow or the exit status.
	 - Packages MAY map their local errors to ErrorCause,
	   but MUST NOT invent new meanings.
	Non-goals:
	 - ErrorCause does not encode severity.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown

Meaning:
  - The failure does not map cleanly to any known category.

# CauseMalformedURI

Meaning:
  - A URI string could not be split into components.

Examples:
  - "http://" (empty authority)
  - "urn://host:with:colon"

# CausePortOutOfRange

Meaning:
  - A port outside 1-65535 was given or parsed.

# CauseAmbiguousReference

Meaning:
  - A reference would be read back differently than it was built.

Examples:
  - Path "//x" without an authority
  - Path "a:b" without a scheme

# CauseInputFailure

Meaning:
  - Input could not be read from a file or stdin.

# CauseConfigInvalid

Meaning:
  - Configuration from file, environment or flags is unusable.
*/
const (
	CauseUnknown ErrorCause = iota
	CauseMalformedURI
	CausePortOutOfRange
	CauseAmbiguousReference
	CauseInputFailure
	CauseConfigInvalid
)

func (c ErrorCause) String() string {
	switch c {
	case CauseMalformedURI:
		return "malformed_uri"
	case CausePortOutOfRange:
		return "port_out_of_range"
	case CauseAmbiguousReference:
		return "ambiguous_reference"
	case CauseInputFailure:
		return "input_failure"
	case CauseConfigInvalid:
		return "config_invalid"
	default:
		return "unknown"
	}
}

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrURL    AttributeKey = "url"
	AttrBase   AttributeKey = "base"
	AttrHost   AttributeKey = "host"
	AttrPath   AttributeKey = "path"
	AttrField  AttributeKey = "field"
	AttrInput  AttributeKey = "input"
	AttrCount  AttributeKey = "count"
	AttrAlgo   AttributeKey = "algo"
	AttrFormat AttributeKey = "format"
)
