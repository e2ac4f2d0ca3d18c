package serverutils

type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Response {
	return Response{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ValidationErrorResponse carries the failing fields in data.
func ValidationErrorResponse(message string, fields map[string]string) Response {
	return Response{
		Success: false,
		Code:    400,
		Message: message,
		Data:    fields,
	}
}
