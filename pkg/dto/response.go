package dto

// Response is the envelope every console endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
