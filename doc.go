// Package statebox implements a unidirectional state store. A Store owns a
// single state value that only changes when an Action is dispatched through
// its Reducer, and it notifies subscribed Listeners after every successful
// change.
//
// Typical usage looks like:
//   - Define Actions as small structs, each reporting its ActionType
//   - Write slice Reducers that fold Actions into their part of the state
//   - Compose the slices into one root Reducer, either explicitly or with
//     CombineReducers
//   - Create a Store with NewStore and Subscribe to it
//   - Dispatch Actions and read the result with GetState
//
// The todo package contains a small todos/goals domain that exercises the API,
// and cmd/statebox is a command line driver for it.
package statebox
