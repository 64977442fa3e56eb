package server

import (
	"path/filepath"

	"github.com/bastiangx/nametag/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// watchConfig reloads server limits when the config file changes on disk.
// The dictionary and matcher switches stay fixed for the session; a restart
// is required to change those.
func (s *Server) watchConfig() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warnf("Config watching disabled: %v", err)
		return
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save, which
	// drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(s.configPath)); err != nil {
		log.Warnf("Config watching disabled: %v", err)
		return
	}

	for {
		select {
		case <-s.done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.configPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s.reloadConfig()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("Config watcher error: %v", err)
		}
	}
}

// reloadConfig re-reads the config file and applies the reloadable settings.
func (s *Server) reloadConfig() {
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("Failed to reload config from %s: %v", s.configPath, err)
		return
	}

	s.mu.Lock()
	changed := s.maxLineLen != cfg.Server.MaxLineLen
	s.maxLineLen = cfg.Server.MaxLineLen
	s.mu.Unlock()

	if changed {
		log.Debugf("Reloaded config: max_line_len=%d", cfg.Server.MaxLineLen)
	}
}
