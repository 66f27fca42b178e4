package track

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/apexaero/aerosim-service-go/log"
)

// Watch reloads the external track file whenever it changes. Only valid
// for registries created with WithTrackFile. Blocks until ctx is done.
func (r *Registry) Watch(ctx context.Context) error {
	if r.source == "" {
		return fmt.Errorf("watch requires an external track file")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(r.source); err != nil {
		return err
	}
	l := log.Default().Named("track.watch")
	l.Info("watching track file", log.String("file", r.source))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				// a failed reload keeps the previous track set
				if err := r.load(); err != nil {
					l.Error("track file reload failed", log.ErrorField(err))
				} else {
					l.Info("track file reloaded",
						log.Int("tracks", len(r.All())))
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.Error("track file watch error", log.ErrorField(err))
		}
	}
}
