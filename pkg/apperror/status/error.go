package status

// ErrorCode is a numeric code to classify API errors in a stable way
type ErrorCode int

// Reserved ranges by domain:
//   0-999:     client/validation errors
//   1000-1999: internal errors
//   2000-2999: upstream collaborator errors

const (
	BadRequestBase    ErrorCode = 0
	InternalErrorBase ErrorCode = 1000
	UpstreamErrorBase ErrorCode = 2000
)

// Client/validation errors start at 0
const (
	ChatInvalidRequestBody ErrorCode = BadRequestBase + iota // 0
	ChatMissingParams                                        // 1
	ChatUnknownLanguage                                      // 2
	ChatBadHistory                                           // 3
)

// Internal errors start at 1000
const (
	ChatInternal         ErrorCode = InternalErrorBase + iota // 1000
	CorpusReloadFailed                                        // 1001
	CorpusSnapshotMissing                                     // 1002
)

// Upstream collaborator errors start at 2000
const (
	TranslationFailed   ErrorCode = UpstreamErrorBase + iota // 2000
	GenerationFailed                                         // 2001
	TranscriptionFailed                                      // 2002
	SynthesisFailed                                          // 2003
)

// Deprecated: prefer domain-specific internal codes above
const (
	ErrorCodeInternal ErrorCode = 9000
)

// CodedError represents an error with an associated ErrorCode
type CodedError interface {
	error
	ErrorCode() ErrorCode
}

type codedError struct {
	code ErrorCode
	err  error
}

func (e codedError) Error() string        { return e.err.Error() }
func (e codedError) Unwrap() error        { return e.err }
func (e codedError) ErrorCode() ErrorCode { return e.code }

// New creates a new CodedError with the given code and underlying error
func New(code ErrorCode, err error) error {
	if err == nil {
		return nil
	}
	return codedError{code: code, err: err}
}
