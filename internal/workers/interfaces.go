// Package workers runs the application's background workers.
// It defines the Worker interface and a Workers aggregate that starts
// every configured worker in a unified way.
package workers

// Worker is implemented by every background worker. Run starts the worker
// and is expected to block for the duration of its work.
type Worker interface {
	Run()
}
