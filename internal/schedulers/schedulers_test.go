package schedulers

import (
	"errors"
	"reflect"
	"testing"

	"os-scheduler/internal/core"
)

func proc(name string, arrival, burst int) core.Process {
	return core.Process{Name: name, ArrivalTime: arrival, BurstTime: burst}
}

func prio(name string, arrival, burst, priority int) core.Process {
	return core.Process{Name: name, ArrivalTime: arrival, BurstTime: burst, Priority: priority}
}

type span struct {
	name       string
	start, end int
}

func spans(timeline core.Timeline) []span {
	out := make([]span, 0, len(timeline))
	for _, interval := range timeline {
		out = append(out, span{interval.Process, interval.Start, interval.End})
	}
	return out
}

func assertSpans(t *testing.T, got core.Timeline, want []span) {
	t.Helper()
	if !reflect.DeepEqual(spans(got), want) {
		t.Errorf("timeline = %v, want %v", spans(got), want)
	}
}

func TestFirstComeFirstServe_WaitsForRunningJob(t *testing.T) {
	got := ScheduleFirstComeFirstServe([]core.Process{proc("A", 0, 5), proc("B", 2, 3)})
	assertSpans(t, got, []span{{"A", 0, 5}, {"B", 5, 8}})
}

func TestFirstComeFirstServe_KeepsInputOrder(t *testing.T) {
	// B arrives first but is listed second; input order wins.
	got := ScheduleFirstComeFirstServe([]core.Process{proc("A", 3, 2), proc("B", 0, 1)})
	assertSpans(t, got, []span{{"A", 3, 5}, {"B", 5, 6}})
}

func TestFirstComeFirstServe_IdleGapBetweenJobs(t *testing.T) {
	got := ScheduleFirstComeFirstServe([]core.Process{proc("A", 0, 2), proc("B", 6, 1)})
	assertSpans(t, got, []span{{"A", 0, 2}, {"B", 6, 7}})
}

func TestShortestJobFirst_OnlyReordersEligibleJobs(t *testing.T) {
	got := ScheduleShortestJobFirst([]core.Process{proc("A", 0, 8), proc("B", 1, 4)})
	assertSpans(t, got, []span{{"A", 0, 8}, {"B", 8, 12}})
}

func TestShortestJobFirst_PicksShortestAmongArrived(t *testing.T) {
	got := ScheduleShortestJobFirst([]core.Process{
		proc("A", 0, 3),
		proc("B", 1, 6),
		proc("C", 2, 2),
		proc("D", 2, 4),
	})
	assertSpans(t, got, []span{{"A", 0, 3}, {"C", 3, 5}, {"D", 5, 9}, {"B", 9, 15}})
}

func TestShortestJobFirst_TieBreaks(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      []span
	}{
		{
			name:      "earlier arrival wins equal bursts",
			processes: []core.Process{proc("X", 0, 10), proc("B", 3, 2), proc("A", 1, 2)},
			want:      []span{{"X", 0, 10}, {"A", 10, 12}, {"B", 12, 14}},
		},
		{
			name:      "input order wins full ties",
			processes: []core.Process{proc("B", 0, 2), proc("A", 0, 2), proc("C", 0, 2)},
			want:      []span{{"B", 0, 2}, {"A", 2, 4}, {"C", 4, 6}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSpans(t, ScheduleShortestJobFirst(tt.processes), tt.want)
		})
	}
}

func TestShortestJobFirst_JumpsToNextArrival(t *testing.T) {
	got := ScheduleShortestJobFirst([]core.Process{proc("A", 0, 2), proc("B", 9, 5), proc("C", 7, 3)})
	assertSpans(t, got, []span{{"A", 0, 2}, {"C", 7, 10}, {"B", 10, 15}})
}

func TestRoundRobin_Slicing(t *testing.T) {
	got := ScheduleRoundRobin([]core.Process{proc("A", 0, 5), proc("B", 0, 3)}, 2)
	assertSpans(t, got, []span{{"A", 0, 2}, {"B", 2, 4}, {"A", 4, 6}, {"B", 6, 7}, {"A", 7, 8}})
}

func TestRoundRobin_QuantumLargerThanBursts(t *testing.T) {
	got := ScheduleRoundRobin([]core.Process{proc("A", 0, 3), proc("B", 1, 2)}, 10)
	assertSpans(t, got, []span{{"A", 0, 3}, {"B", 3, 5}})
}

func TestRoundRobin_CyclesStaticList(t *testing.T) {
	// A is not revisited until the pass reaches the end of the list, so the
	// cpu jumps ahead to B's arrival first.
	got := ScheduleRoundRobin([]core.Process{proc("A", 0, 4), proc("B", 10, 2)}, 2)
	assertSpans(t, got, []span{{"A", 0, 2}, {"B", 10, 12}, {"A", 12, 14}})
}

func TestPriority_LowerValueRunsFirst(t *testing.T) {
	got := SchedulePriority([]core.Process{prio("A", 0, 5, 2), prio("B", 0, 3, 1)})
	assertSpans(t, got, []span{{"B", 0, 3}, {"A", 3, 8}})
}

func TestPriority_NonPreemptive(t *testing.T) {
	got := SchedulePriority([]core.Process{prio("A", 0, 4, 5), prio("B", 1, 2, 0), prio("C", 2, 2, 1)})
	assertSpans(t, got, []span{{"A", 0, 4}, {"B", 4, 6}, {"C", 6, 8}})
}

func TestPriority_TieBreaks(t *testing.T) {
	got := SchedulePriority([]core.Process{
		prio("Long", 0, 6, 9),
		prio("Late", 4, 1, 1),
		prio("Early", 2, 1, 1),
		prio("Twin", 2, 1, 1),
	})
	assertSpans(t, got, []span{{"Long", 0, 6}, {"Early", 6, 7}, {"Twin", 7, 8}, {"Late", 8, 9}})
}

func TestPriority_DefaultsToZero(t *testing.T) {
	got := SchedulePriority([]core.Process{prio("A", 0, 2, 1), proc("B", 0, 2)})
	assertSpans(t, got, []span{{"B", 0, 2}, {"A", 2, 4}})
}

func TestEveryPolicy_IdleGapAtStart(t *testing.T) {
	processes := []core.Process{proc("A", 10, 4)}
	for _, policy := range Policies {
		t.Run(policy.String(), func(t *testing.T) {
			got, err := Schedule(processes, policy, 4)
			if err != nil {
				t.Fatalf("Schedule: %v", err)
			}
			assertSpans(t, got, []span{{"A", 10, 14}})
		})
	}
}

func TestEveryPolicy_EmptyInput(t *testing.T) {
	for _, policy := range Policies {
		got, err := Schedule(nil, policy, 1)
		if err != nil {
			t.Fatalf("%s: %v", policy, err)
		}
		if len(got) != 0 {
			t.Errorf("%s: got %d intervals, want 0", policy, len(got))
		}
	}
}

var propertyInputs = map[string][]core.Process{
	"simultaneous": {prio("A", 0, 5, 3), prio("B", 0, 3, 1), prio("C", 0, 1, 2)},
	"staggered":    {prio("P1", 0, 7, 2), prio("P2", 2, 4, 1), prio("P3", 4, 1, 3), prio("P4", 5, 4, 0)},
	"gaps":         {prio("A", 3, 2, 1), prio("B", 20, 6, 0), prio("C", 8, 9, 2)},
	"unsorted":     {prio("Z", 12, 3, 0), prio("Y", 0, 11, 5), prio("X", 5, 2, 1), prio("W", 1, 1, 1)},
	"duplicates":   {prio("dup", 0, 3, 0), prio("dup", 1, 5, 0), prio("dup", 1, 2, 0)},
}

// Invariants that hold for every policy on valid input.
func TestEveryPolicy_TimelineInvariants(t *testing.T) {
	for name, processes := range propertyInputs {
		for _, policy := range Policies {
			for _, quantum := range []int{1, 2, 3, 100} {
				if policy != RoundRobin && quantum != 1 {
					continue
				}
				timeline, err := Schedule(processes, policy, quantum)
				if err != nil {
					t.Fatalf("%s/%s: %v", name, policy, err)
				}
				checkInvariants(t, name+"/"+policy.String(), processes, timeline)
			}
		}
	}
}

func checkInvariants(t *testing.T, label string, processes []core.Process, timeline core.Timeline) {
	t.Helper()

	executed := timeline.ExecutedBy(len(processes))
	for job, process := range processes {
		if executed[job] != process.BurstTime {
			t.Errorf("%s: job %d ran %d units, want %d", label, job, executed[job], process.BurstTime)
		}
	}

	for i, interval := range timeline {
		if interval.End < interval.Start {
			t.Errorf("%s: interval %d ends before it starts: %+v", label, i, interval)
		}
		if interval.Start < processes[interval.Job].ArrivalTime {
			t.Errorf("%s: interval %d starts at %d before arrival %d", label, i, interval.Start, processes[interval.Job].ArrivalTime)
		}
		if interval.Process != processes[interval.Job].Name {
			t.Errorf("%s: interval %d names %q, job is %q", label, i, interval.Process, processes[interval.Job].Name)
		}
		if i > 0 && timeline[i-1].End > interval.Start {
			t.Errorf("%s: interval %d overlaps previous: %+v then %+v", label, i, timeline[i-1], interval)
		}
	}
}

func TestSchedule_Errors(t *testing.T) {
	processes := []core.Process{proc("A", 0, 1)}

	if _, err := Schedule(processes, RoundRobin, 0); !errors.Is(err, ErrInvalidQuantum) {
		t.Errorf("quantum 0: err = %v, want ErrInvalidQuantum", err)
	}
	if _, err := Schedule(processes, RoundRobin, -3); !errors.Is(err, ErrInvalidQuantum) {
		t.Errorf("quantum -3: err = %v, want ErrInvalidQuantum", err)
	}
	if _, err := Schedule(processes, Policy(42), 1); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("policy 42: err = %v, want ErrUnknownPolicy", err)
	}
	// the quantum is ignored outside round robin
	if _, err := Schedule(processes, ShortestJobFirst, 0); err != nil {
		t.Errorf("sjf with quantum 0: %v", err)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := map[string]Policy{
		"fcfs":        FirstComeFirstServe,
		"SJF":         ShortestJobFirst,
		" rr ":        RoundRobin,
		"round-robin": RoundRobin,
		"Priority":    Priority,
	}
	for in, want := range tests {
		got, err := ParsePolicy(in)
		if err != nil {
			t.Errorf("ParsePolicy(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePolicy(%q) = %s, want %s", in, got, want)
		}
		if back, _ := ParsePolicy(got.String()); back != got {
			t.Errorf("ParsePolicy(%q.String()) = %s", got, back)
		}
	}

	if _, err := ParsePolicy("mlfq"); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("ParsePolicy(mlfq): err = %v, want ErrUnknownPolicy", err)
	}
}

func TestScheduleAll_MatchesSingleRuns(t *testing.T) {
	processes := propertyInputs["staggered"]
	all, err := ScheduleAll(processes, 2)
	if err != nil {
		t.Fatalf("ScheduleAll: %v", err)
	}
	if len(all) != len(Policies) {
		t.Fatalf("got %d timelines, want %d", len(all), len(Policies))
	}
	for _, policy := range Policies {
		want, _ := Schedule(processes, policy, 2)
		if !reflect.DeepEqual(all[policy], want) {
			t.Errorf("%s: ScheduleAll = %v, Schedule = %v", policy, spans(all[policy]), spans(want))
		}
	}

	if _, err := ScheduleAll(processes, 0); !errors.Is(err, ErrInvalidQuantum) {
		t.Errorf("ScheduleAll quantum 0: err = %v, want ErrInvalidQuantum", err)
	}
}

func TestSchedulers_DoNotMutateInput(t *testing.T) {
	processes := []core.Process{prio("A", 0, 5, 2), prio("B", 1, 3, 1), prio("C", 1, 1, 0)}
	before := append([]core.Process(nil), processes...)
	for _, policy := range Policies {
		if _, err := Schedule(processes, policy, 2); err != nil {
			t.Fatal(err)
		}
	}
	if !reflect.DeepEqual(processes, before) {
		t.Errorf("input mutated: %v, want %v", processes, before)
	}
}

func TestSchedulePolicies(t *testing.T) {
	processes := propertyInputs["staggered"]

	got, err := SchedulePolicies(processes, []Policy{ShortestJobFirst, Priority}, 0)
	if err != nil {
		t.Fatalf("SchedulePolicies without round robin: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d timelines, want 2", len(got))
	}
	if _, ok := got[RoundRobin]; ok {
		t.Error("round robin ran although it was not requested")
	}

	if _, err := SchedulePolicies(processes, []Policy{FirstComeFirstServe, RoundRobin}, 0); !errors.Is(err, ErrInvalidQuantum) {
		t.Errorf("round robin with quantum 0: err = %v, want ErrInvalidQuantum", err)
	}
	if _, err := SchedulePolicies(processes, []Policy{FirstComeFirstServe, Policy(42)}, 2); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("unknown policy: err = %v, want ErrUnknownPolicy", err)
	}
}
