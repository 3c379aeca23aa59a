package statebox_test

import "github.com/kode4food/statebox"

// Simple counter domain for testing
type (
	Increment struct {
		By int
	}

	Decrement struct {
		By int
	}

	Explode struct{}

	Unknown struct{}
)

const (
	TypeIncrement statebox.ActionType = "increment"
	TypeDecrement statebox.ActionType = "decrement"
	TypeExplode   statebox.ActionType = "explode"
	TypeUnknown   statebox.ActionType = "unknown"
)

func (Increment) Type() statebox.ActionType { return TypeIncrement }
func (Decrement) Type() statebox.ActionType { return TypeDecrement }
func (Explode) Type() statebox.ActionType   { return TypeExplode }
func (Unknown) Type() statebox.ActionType   { return TypeUnknown }

var counter = statebox.ByType(statebox.Reducers[int]{
	TypeIncrement: statebox.MakeReducer(func(s int, a Increment) int {
		return s + a.By
	}),
	TypeDecrement: statebox.MakeReducer(func(s int, a Decrement) int {
		return s - a.By
	}),
	TypeExplode: func(int, statebox.Action) int {
		panic("boom")
	},
})
