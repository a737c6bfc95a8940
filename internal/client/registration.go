package client

import (
	"context"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
)

// FlowState is a registration workflow state.
type FlowState string

const (
	StateIdle      FlowState = "idle"
	StateLoading   FlowState = "loading"
	StateSucceeded FlowState = "succeeded"
	StateFailed    FlowState = "failed"
)

// Workflow outcome messages.
const (
	MissingEventMessage    = "Missing user or event information."
	RegisteredMessage      = "Successfully registered for the event!"
	RegistrationErrMessage = "An error occurred while registering."
)

// RegistrationFlow drives a single registration attempt through
// Idle -> Loading -> {Succeeded, Failed}. A failed attempt may be retried,
// which runs Loading again; success is terminal.
type RegistrationFlow struct {
	client  *Client
	userID  int64
	event   *dto.EventResponse
	state   FlowState
	message string
}

// NewRegistrationFlow creates a flow for the given user and target event.
// A nil event is allowed; starting such a flow fails without a network call.
func NewRegistrationFlow(client *Client, userID int64, event *dto.EventResponse) *RegistrationFlow {
	return &RegistrationFlow{
		client: client,
		userID: userID,
		event:  event,
		state:  StateIdle,
	}
}

// State returns the current workflow state.
func (f *RegistrationFlow) State() FlowState {
	return f.state
}

// Message returns the outcome message from the last transition.
func (f *RegistrationFlow) Message() string {
	return f.message
}

// Start runs the registration attempt. It is valid from Idle and from
// Failed (retry); any other state is a no-op returning the current state.
func (f *RegistrationFlow) Start(ctx context.Context) FlowState {
	if f.state != StateIdle && f.state != StateFailed {
		return f.state
	}

	if f.event == nil || f.userID == 0 {
		f.state = StateFailed
		f.message = MissingEventMessage
		return f.state
	}

	f.state = StateLoading

	resp, err := f.client.Register(ctx, f.userID, f.event.ID)
	if err != nil {
		f.state = StateFailed
		f.message = RegistrationErrMessage
		return f.state
	}

	if !resp.Success {
		f.state = StateFailed
		f.message = resp.Message
		if f.message == "" {
			f.message = RegistrationErrMessage
		}
		return f.state
	}

	f.state = StateSucceeded
	f.message = RegisteredMessage
	return f.state
}
