package interfaces

import "context"

//go:generate mockgen -source=agent_clients_interface.go -destination=mocks/agent_clients_mock.go -package=mocks

// ICapacityClient dispatches a capacity check to the Operations agent.
//
// A nil return means the transport accepted the request; it says nothing about
// the business outcome, which arrives later on the capacity-check-response
// callback. A non-nil return is a transport failure (connect error, timeout)
// and is not retried by the caller.
type ICapacityClient interface {
	Dispatch(ctx context.Context, requestID string, payload map[string]interface{}) error
}

// ICostingClient dispatches a costing request to the Finance agent. Same
// accepted-vs-failure semantics as ICapacityClient; the answer arrives on the
// costing-parameters callback.
type ICostingClient interface {
	Dispatch(ctx context.Context, quoteID string, payload map[string]interface{}) error
}
