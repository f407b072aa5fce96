// Package event provides synchronous edit notification for the document
// engine. The piece table publishes an Edit after every successful mutation;
// every registered listener (typically a style run manager) is invoked
// synchronously, in-process, before the mutating call returns.
//
// There is deliberately no asynchronous delivery: style trees must be fully
// rewritten for one edit before the next edit can be generated, and the
// single-threaded delivery model guarantees that without locking inside the
// listeners.
//
// Basic usage:
//
//	n := event.NewNotifier()
//	sub, _ := n.SubscribeFunc(func(e event.Edit) {
//	    // react to the edit
//	})
//	n.Publish(event.Insertion(5, 3))
//	n.Unsubscribe(sub)
package event
