package ports

// LineKind is the content category of a generated line.
type LineKind string

const (
	LineKindCode    LineKind = "code"
	LineKindText    LineKind = "text"
	LineKindComment LineKind = "comment"
	LineKindBlank   LineKind = "blank"
)

// LineKinds lists every kind in a stable order.
var LineKinds = []LineKind{LineKindCode, LineKindText, LineKindComment, LineKindBlank}
