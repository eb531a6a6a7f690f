package checkpoint

import (
	"fmt"

	"github.com/looplab/fsm"
)

var placeEvents = fsm.Events{
	{Name: "retire", Src: []string{string(PlaceHead), string(PlaceBottom)}, Dst: string(PlaceOld)},
	{Name: "promote", Src: []string{string(PlaceHead)}, Dst: string(PlaceBottom)},
}

var statusEvents = fsm.Events{
	{Name: "complete", Src: []string{string(StatusProcessing)}, Dst: string(StatusComplete)},
	{Name: "fail", Src: []string{string(StatusProcessing)}, Dst: string(StatusError)},
	{Name: "skip", Src: []string{string(StatusProcessing)}, Dst: string(StatusSkipped)},
}

func canTransition(events fsm.Events, from, to string) bool {
	machine := fsm.NewFSM(from, events, nil)
	for _, ev := range events {
		if ev.Dst == to && machine.Can(ev.Name) {
			return true
		}
	}
	return false
}

func sources[S ~string](events fsm.Events, to S) []S {
	var out []S
	for _, ev := range events {
		if ev.Dst != string(to) {
			continue
		}
		for _, src := range ev.Src {
			out = append(out, S(src))
		}
	}
	return out
}

// CanMove reports whether a record may move from p to the given place.
func (p Place) CanMove(to Place) bool {
	return canTransition(placeEvents, string(p), string(to))
}

// CanMove reports whether a record may move from s to the given status.
// Only Processing records can change status.
func (s Status) CanMove(to Status) bool {
	return canTransition(statusEvents, string(s), string(to))
}

// PlaceSources lists the places a record may leave to reach to.
// Storage implementations restrict their updates to these.
func PlaceSources(to Place) []Place {
	return sources(placeEvents, to)
}

// StatusSources lists the statuses a record may leave to reach to.
func StatusSources(to Status) []Status {
	return sources(statusEvents, to)
}

// CheckPlaceMove returns ErrIllegalTransition if from cannot move to to.
func CheckPlaceMove(from, to Place) error {
	if !from.CanMove(to) {
		return fmt.Errorf("%w: place %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}

// CheckStatusMove returns ErrIllegalTransition if from cannot move to to.
func CheckStatusMove(from, to Status) error {
	if !from.CanMove(to) {
		return fmt.Errorf("%w: status %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}
