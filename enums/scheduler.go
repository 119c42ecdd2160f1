package enums

import (
	"errors"
	"fmt"

	"github.com/eapache/queue"

	"github.com/marcodamonte/go-concepts/internal/set"
)

var (
	ErrNoProcesses      = errors.New("no processes to dispatch to")
	ErrDuplicateProcess = errors.New("duplicate process id")
)

// ── Generic union ─────────────────────────────────────────────────────────────
// A scheduler is either Pending (jobs nobody has picked up) or Running (jobs
// assigned per process), never both. Job and Pid are map keys, so both must
// be comparable.
//
// The marker method takes the type parameters, so Pending[string, int] does
// not satisfy SchedulerState[int, int].

type SchedulerState[Job, Pid comparable] interface {
	isSchedulerState(Job, Pid)
}

type Pending[Job, Pid comparable] struct {
	Jobs *set.Set[Job]
}

type Running[Job, Pid comparable] struct {
	Assignments map[Pid][]Job
}

func (Pending[Job, Pid]) isSchedulerState(Job, Pid) {}
func (Running[Job, Pid]) isSchedulerState(Job, Pid) {}

// NewPending cannot infer Pid from its arguments; name both type parameters:
//
//	enums.NewPending[string, int]("build", "test")
func NewPending[Job, Pid comparable](jobs ...Job) Pending[Job, Pid] {
	return Pending[Job, Pid]{Jobs: set.New(jobs...)}
}

// Enqueue adds jobs that are not pending yet. It works on the zero Pending.
func (p *Pending[Job, Pid]) Enqueue(jobs ...Job) {
	if p.Jobs == nil {
		p.Jobs = set.New[Job]()
	}
	for _, j := range jobs {
		p.Jobs.Add(j)
	}
}

// Take withdraws job before it is dispatched. It reports false when the job
// was not pending.
func (p Pending[Job, Pid]) Take(job Job) bool { return p.Jobs.Remove(job) }

func (p Pending[Job, Pid]) Has(job Job) bool { return p.Jobs.Contains(job) }

// Merge returns a Pending holding the jobs of both; neither input changes.
func (p Pending[Job, Pid]) Merge(other Pending[Job, Pid]) Pending[Job, Pid] {
	return Pending[Job, Pid]{Jobs: p.Jobs.Union(other.Jobs)}
}

func NewRunning[Job, Pid comparable](assignments map[Pid][]Job) Running[Job, Pid] {
	if assignments == nil {
		assignments = make(map[Pid][]Job)
	}
	return Running[Job, Pid]{Assignments: assignments}
}

// JobCount is the number of jobs across every process.
func (r Running[Job, Pid]) JobCount() int {
	n := 0
	for _, jobs := range r.Assignments {
		n += len(jobs)
	}
	return n
}

// Dispatch moves every pending job onto pids, rotating through them so no two
// processes differ by more than one job. Every pid appears in the result, even
// when it receives nothing.
func Dispatch[Job, Pid comparable](p Pending[Job, Pid], pids ...Pid) (Running[Job, Pid], error) {
	if len(pids) == 0 {
		return Running[Job, Pid]{}, ErrNoProcesses
	}

	assignments := make(map[Pid][]Job, len(pids))
	rotation := queue.New()
	for _, pid := range pids {
		if _, dup := assignments[pid]; dup {
			return Running[Job, Pid]{}, fmt.Errorf("dispatch to %v: %w", pid, ErrDuplicateProcess)
		}
		assignments[pid] = []Job{}
		rotation.Add(pid)
	}

	for _, job := range p.Jobs.Slice() {
		pid := rotation.Remove().(Pid)
		assignments[pid] = append(assignments[pid], job)
		rotation.Add(pid)
	}
	return NewRunning(assignments), nil
}

// Describe matches on the variant. A nil state reports "unknown".
func Describe[Job, Pid comparable](s SchedulerState[Job, Pid]) string {
	switch v := s.(type) {
	case Pending[Job, Pid]:
		return fmt.Sprintf("pending(%d jobs)", v.Jobs.Len())
	case Running[Job, Pid]:
		return fmt.Sprintf("running(%d processes, %d jobs)", len(v.Assignments), v.JobCount())
	default:
		return "unknown"
	}
}
