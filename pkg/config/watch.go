package config

import (
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the global configuration whenever the config file changes.
// It blocks until stop is closed. Missing config files are not an error;
// the watcher simply never fires.
func Watch(stop <-chan struct{}) error {
	cfg := Get()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cfg.ConfigFilePath()); err != nil {
		// No config file on disk; nothing to watch.
		return nil
	}

	log.Printf("Watching %s for configuration changes\n", cfg.ConfigFilePath())

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				log.Printf("[%s] Configuration file modified, reloading...\n", time.Now().Format(time.RFC3339))
				if err := Reload(); err != nil {
					log.Printf("Error reloading configuration: %v\n", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v\n", err)
		case <-stop:
			return nil
		}
	}
}
