package dto

import "github.com/gofiber/fiber/v2"

// ResponseStatus is the status block every response carries.
type ResponseStatus struct {
	StatusCode int         `json:"statusCode"`
	ErrorCode  *string     `json:"errorCode"`
	Message    string      `json:"message"`
	Errors     interface{} `json:"errors"`
}

// Envelope is the uniform response shape: clients parse one structure
// regardless of outcome.
type Envelope struct {
	Status ResponseStatus `json:"status"`
	Data   interface{}    `json:"data"`
}

// Respond writes a success envelope.
func Respond(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(Envelope{
		Status: ResponseStatus{
			StatusCode: statusCode,
			Message:    message,
		},
		Data: data,
	})
}

// RespondError writes a failure envelope with optional error detail.
func RespondError(c *fiber.Ctx, statusCode int, message string, errs interface{}) error {
	return c.Status(statusCode).JSON(Envelope{
		Status: ResponseStatus{
			StatusCode: statusCode,
			Message:    message,
			Errors:     errs,
		},
	})
}
