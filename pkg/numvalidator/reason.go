package numvalidator

// Reason explains why an input was rejected. ReasonNone means the input is valid.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonEmpty
	ReasonWhitespace
	ReasonMalformed
	ReasonPrecisionExceeded
	ReasonScaleExceeded
	ReasonNegativeNotAllowed
)

var reasonCodes = [...]string{
	ReasonNone:               "ok",
	ReasonEmpty:              "empty",
	ReasonWhitespace:         "whitespace",
	ReasonMalformed:          "malformed",
	ReasonPrecisionExceeded:  "precision_exceeded",
	ReasonScaleExceeded:      "scale_exceeded",
	ReasonNegativeNotAllowed: "negative_not_allowed",
}

// String returns the stable code of the reason, suitable for APIs and translation keys.
func (r Reason) String() string {
	if int(r) < len(reasonCodes) {
		return reasonCodes[r]
	}
	return "unknown"
}

// Valid reports whether the reason denotes an accepted input.
func (r Reason) Valid() bool {
	return r == ReasonNone
}
