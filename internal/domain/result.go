package domain

// Outcome discriminates a Result.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeRejected
)

// Reason classifies why a business-rule operation was rejected.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonDuplicate   Reason = "duplicate"
	ReasonNotFound    Reason = "not_found"
	ReasonUnknownItem Reason = "unknown_item"
	ReasonReferenced  Reason = "referenced"
	ReasonInvalid     Reason = "invalid"
)

// Result is the outcome of a database mutation. Expected business-rule
// violations (duplicates, missing references, unknown ids) are Rejected
// results, never Go errors.
type Result struct {
	Outcome Outcome `json:"-"`
	Reason  Reason  `json:"reason,omitempty"`
	Message string  `json:"message"`
}

// Ok builds a successful result.
func Ok(msg string) Result {
	return Result{Outcome: OutcomeOK, Message: msg}
}

// Rejected builds a rejected result.
func Rejected(reason Reason, msg string) Result {
	return Result{Outcome: OutcomeRejected, Reason: reason, Message: msg}
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Outcome == OutcomeOK
}

func (r Result) String() string {
	return r.Message
}
