package apperr

// Kind tags an error category. Dispatch happens on the tag, not on types.
type Kind string

const (
	KindBadRequest Kind = "BadRequestException"
	KindForbidden  Kind = "ForbiddenException"
	KindNotFound   Kind = "NotFoundException"
	KindHTTP       Kind = "HttpException"
	KindValidation Kind = "ValidationException"
)

// Response is the structured detail payload an error may carry.
// Message holds either a string or a []string.
type Response struct {
	Message any
}

// Error is the single error shape the handler chain understands.
// Detail is optional; when nil, responses fall back to Message alone.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Detail  func() Response
}

func (e *Error) Error() string { return e.Message }

// GetResponse resolves the detail payload, falling back to Message.
func (e *Error) GetResponse() Response {
	if e.Detail != nil {
		return e.Detail()
	}
	return Response{Message: e.Message}
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Status: 400, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Status: 403, Message: msg}
}

func NotFound(msg string, detail func() Response) *Error {
	return &Error{Kind: KindNotFound, Status: 404, Message: msg, Detail: detail}
}

func HTTP(status int, msg string) *Error {
	return &Error{
		Kind: KindHTTP, Status: status, Message: msg,
		Detail: func() Response { return Response{Message: msg} },
	}
}

// Validation carries the first violation as Message and every surviving
// violation in declaration order as the detail payload.
func Validation(first string, all []string) *Error {
	return &Error{
		Kind: KindValidation, Status: 422, Message: first,
		Detail: func() Response { return Response{Message: all} },
	}
}
