package main

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/marcodamonte/go-concepts/enums"
)

func demoHTTPStatus() error {
	for _, c := range []enums.HTTPStatusCode{enums.SwitchProtocol, enums.NotFound, enums.GatewayTimeout} {
		label(c.String(), fmt.Sprintf("int=%d  uint8=%d", int(c), c.Uint8()))
	}
	return nil
}

func demoScheduler() error {
	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
	}

	// Jobs arrive in two batches; one is cancelled before dispatch.
	var first enums.Pending[uuid.UUID, int]
	first.Enqueue(ids[:3]...)
	pending := first.Merge(enums.NewPending[uuid.UUID, int](ids[3:]...))
	if pending.Take(ids[0]) {
		label("cancelled", ids[0])
	}

	var state enums.SchedulerState[uuid.UUID, int] = pending
	label("state", enums.Describe(state))

	running, err := enums.Dispatch(pending, 100, 200)
	if err != nil {
		return err
	}
	state = running
	label("state", enums.Describe(state))

	pids := make([]int, 0, len(running.Assignments))
	for pid := range running.Assignments {
		pids = append(pids, pid)
	}
	slices.Sort(pids)
	for _, pid := range pids {
		label(fmt.Sprintf("pid %d", pid), len(running.Assignments[pid]))
	}
	return nil
}

func demoShapes() error {
	shapes := []enums.Shape{enums.Circle{Radius: 5}, enums.Rectangle{Width: 4, Height: 6}}
	for _, s := range shapes {
		label(s.String(), fmt.Sprintf("area=%.4f", s.Area()))
	}
	label("total area", fmt.Sprintf("%.4f", enums.TotalArea(shapes)))
	return nil
}

func demoLanguages() error {
	langs := []enums.ProgramLanguage{enums.Rust, enums.Java, enums.Rest{Name: "Ruok", Rank: 3}}
	for _, l := range langs {
		switch v := l.(type) {
		case enums.LanguageTag:
			label(v.String(), fmt.Sprintf("discriminant=%d", v.Discriminant()))
		case enums.Rest:
			// No Discriminant here: Rest carries data.
			label(v.String(), fmt.Sprintf("%s place, no discriminant", v.Ordinal()))
		}
	}
	return nil
}
