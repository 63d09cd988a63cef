// Package supervisor keeps the lifetime loops alive. A loop body that
// fails (lost connection, vanished device) is thrown away and rebuilt; the
// process has no fatal path once startup succeeds.
package supervisor

import "log"

// Task is one lifetime loop body. A healthy task never returns; any
// return, error or not, counts as a failure.
type Task func() error

// Supervisor reruns a task whenever it returns. The restart policy is
// immediate and unconditional; MaxRestarts only exists so tests can bound
// the loop.
type Supervisor struct {
	Name        string
	Task        Task
	MaxRestarts int // negative = unlimited
}

// Run executes the task until the restart budget is exhausted. With a
// negative budget it never returns.
func (s *Supervisor) Run() {
	for restarts := 0; ; restarts++ {
		if err := s.Task(); err != nil {
			log.Printf("%s: %v; restarting", s.Name, err)
		} else {
			log.Printf("%s exited; restarting", s.Name)
		}
		if s.MaxRestarts >= 0 && restarts >= s.MaxRestarts {
			return
		}
	}
}

// Forever runs the task with an unlimited restart budget. It never
// returns.
func Forever(name string, task Task) {
	(&Supervisor{Name: name, Task: task, MaxRestarts: -1}).Run()
}
