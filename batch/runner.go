// Package batch runs multiple independent SolveMinimum calls concurrently.
// The core solver itself stays single-threaded and synchronous; nothing
// here parallelises a single solve. It is SolveMinimum's reentrancy (each
// call owns its own multiset, presence set, and fingerprint filter) that
// makes it safe to run many calls side by side, and this package is the
// harness that does so, one goroutine-backed actor per job.
package batch

import (
	"sync"

	"github.com/atlasgurus/linsolve/engine"
	"github.com/atlasgurus/linsolve/fact"
)

// Job describes one independent SolveMinimum invocation to run as part of
// a batch.
type Job[F fact.Fact] struct {
	Name    string
	Initial []F
	Infer   engine.Infer[F]
}

// Result pairs a Job's name with its solved multiset and driver metrics.
type Result[F fact.Fact] struct {
	Name    string
	Facts   []F
	Metrics engine.IterationMetrics
}

// Action is a deferred unit of work produced by an ActionWithCallback, run
// back on the calling goroutine once the actor has computed it.
type Action func()

// ActionWithActor is work submitted to an actor's own goroutine.
type ActionWithActor[F fact.Fact] func(actor *Actor[F])

// ActionWithCallback is work submitted to an actor's goroutine that
// produces an Action to run back on the caller.
type ActionWithCallback[F fact.Fact] func(actor *Actor[F]) Action

// Actor owns a single goroutine draining a channel of submitted actions,
// one at a time. Its payload is the Job it exists to run: unlike the
// teacher's actors.Actor, which carries an untyped Data and is reused
// across arbitrary submitted work, a batch Actor is spawned for exactly
// one SolveMinimum call, so its payload is typed as Job[F] directly.
type Actor[F fact.Fact] struct {
	actionChan chan ActionWithActor[F]
	Job        Job[F]
}

// NewActor starts an actor's action loop goroutine for job and returns it.
func NewActor[F fact.Fact](job Job[F], chanSize uint) *Actor[F] {
	actor := &Actor[F]{actionChan: make(chan ActionWithActor[F], chanSize), Job: job}
	go actor.actionLoop()
	return actor
}

// Do submits action to the actor's goroutine without waiting for it.
func (actor *Actor[F]) Do(action ActionWithActor[F]) {
	actor.actionChan <- action
}

// Call submits action and arranges for its resulting Action to be sent on
// callbackChan once computed.
func (actor *Actor[F]) Call(action ActionWithCallback[F], callbackChan chan Action) {
	actor.actionChan <- func(actor *Actor[F]) {
		callbackChan <- action(actor)
	}
}

// DoAndCallback submits action, blocks until the actor has computed its
// result, then runs that result's Action on the calling goroutine.
func (actor *Actor[F]) DoAndCallback(action ActionWithCallback[F]) {
	resultChan := make(chan Action)
	actor.Call(action, resultChan)
	callback := <-resultChan
	callback()
}

func (actor *Actor[F]) actionLoop() {
	for action := range actor.actionChan {
		action(actor)
	}
}

// RunAll dispatches each job to its own Actor and waits for every result.
// Each actor's goroutine runs engine.SolveMinimumMetrics independently;
// SolveMinimum's reentrancy guarantees none of those calls share state.
func RunAll[F fact.Fact](jobs []Job[F]) []Result[F] {
	results := make([]Result[F], len(jobs))
	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		actor := NewActor(job, 1)
		go func(i int, job Job[F]) {
			defer wg.Done()
			actor.DoAndCallback(func(a *Actor[F]) Action {
				facts, metrics := engine.SolveMinimumMetrics(a.Job.Initial, a.Job.Infer)
				return func() {
					results[i] = Result[F]{Name: job.Name, Facts: facts, Metrics: metrics}
				}
			})
		}(i, job)
	}
	wg.Wait()
	return results
}
