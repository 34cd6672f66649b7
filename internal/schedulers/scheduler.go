package schedulers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"os-scheduler/internal/core"
)

var (
	ErrUnknownPolicy  = errors.New("unknown scheduling policy")
	ErrInvalidQuantum = errors.New("round robin time quantum must be a positive integer")
)

type Policy int

const (
	FirstComeFirstServe Policy = iota + 1
	ShortestJobFirst
	RoundRobin
	Priority
)

// Policies lists every policy in presentation order.
var Policies = []Policy{FirstComeFirstServe, ShortestJobFirst, RoundRobin, Priority}

func (p Policy) String() string {
	switch p {
	case FirstComeFirstServe:
		return "fcfs"
	case ShortestJobFirst:
		return "sjf"
	case RoundRobin:
		return "rr"
	case Priority:
		return "priority"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Title is the human readable policy name used in reports.
func (p Policy) Title() string {
	switch p {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case RoundRobin:
		return "Round-robin"
	case Priority:
		return "Priority"
	default:
		return p.String()
	}
}

// ParsePolicy accepts the short ids as well as a few long spellings.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "first-come-first-serve":
		return FirstComeFirstServe, nil
	case "sjf", "shortest-job-first":
		return ShortestJobFirst, nil
	case "rr", "round-robin", "roundrobin":
		return RoundRobin, nil
	case "priority", "prio":
		return Priority, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Schedule runs a single policy. timeQuantum is only read for RoundRobin.
func Schedule(processes []core.Process, policy Policy, timeQuantum int) (core.Timeline, error) {
	switch policy {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes), nil
	case RoundRobin:
		if timeQuantum <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
		}
		return ScheduleRoundRobin(processes, timeQuantum), nil
	case Priority:
		return SchedulePriority(processes), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, policy)
	}
}

// ScheduleAll runs every policy on the same input, one goroutine each.
func ScheduleAll(processes []core.Process, timeQuantum int) (map[Policy]core.Timeline, error) {
	return SchedulePolicies(processes, Policies, timeQuantum)
}

// SchedulePolicies runs the given policies concurrently. The engine keeps no
// shared state, so the runs are independent. If any policy fails, the first
// failure in policies order is returned and no timelines are.
func SchedulePolicies(processes []core.Process, policies []Policy, timeQuantum int) (map[Policy]core.Timeline, error) {
	var (
		wg        sync.WaitGroup
		timelines = make([]core.Timeline, len(policies))
		errs      = make([]error, len(policies))
	)
	wg.Add(len(policies))
	for i, policy := range policies {
		go func(i int, policy Policy) {
			defer wg.Done()
			timelines[i], errs[i] = Schedule(processes, policy, timeQuantum)
		}(i, policy)
	}
	wg.Wait()

	result := make(map[Policy]core.Timeline, len(policies))
	for i, policy := range policies {
		if errs[i] != nil {
			return nil, errs[i]
		}
		result[policy] = timelines[i]
	}
	return result, nil
}
