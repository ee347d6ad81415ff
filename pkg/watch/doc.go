// Package watch re-runs work when aggregate files change.
//
// [FileWatcher] turns fsnotify events into a stream of changed paths and
// [Debouncer] folds bursts of them into single [Event] batches. [Watch]
// wires the two together:
//
//	events, err := watch.Watch(ctx, []string{"orders.json"}, 300*time.Millisecond, logger)
//	for ev := range events {
//	    // re-render ev.Paths
//	}
package watch
