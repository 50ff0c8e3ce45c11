package handler

import (
	"crowdfunder/internal/view"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	State   view.Phase  `json:"state,omitempty"`   // view state of the resource
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// stateResponse renders a view state. Data is only sent once the view is ready.
func stateResponse[T any](s view.State[T], message string) Response {
	resp := Response{
		Message: message,
		State:   s.Phase(),
		Error:   s.Reason(),
	}
	if s.Phase() == view.PhaseReady {
		resp.Data = s.Data()
	}
	return resp
}
