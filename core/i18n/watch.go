// File: watch.go
// Title: Locale File Watching Implementation
// Description: Watches the locales directory with fsnotify and reloads it when
//              a bundle file changes. The compiled pattern cache is purged and
//              change handlers are notified for the affected locale.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Polling based watcher
// - 2026-10-14 v0.2.0: fsnotify events instead of polling

package i18n

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/core/log"
)

// startWatching starts monitoring the locales directory for changes
func (m *Manager) startWatching() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("i18n.startWatching")
	}

	if err := watcher.Add(m.localesDir); err != nil {
		watcher.Close()
		return mdwerror.Wrap(err, "failed to watch locales directory").
			WithCode(mdwerror.CodeInvalidOperation).
			WithOperation("i18n.startWatching").
			WithDetail("directory", m.localesDir)
	}

	m.watcher = watcher
	m.wg.Add(1)
	go m.watchLoop(watcher)

	m.logger.Debug("watching locales directory", log.Fields{"directory": m.localesDir})
	return nil
}

func (m *Manager) watchLoop(watcher *fsnotify.Watcher) {
	defer m.wg.Done()

	for {
		select {
		case <-m.done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			m.handleEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			m.logger.WarnWithErr("locale watcher error", err)
		}
	}
}

// handleEvent reloads the directory layer when a bundle file changed
func (m *Manager) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	name := filepath.Base(event.Name)
	if _, ok := m.format.accepts(strings.ToLower(filepath.Ext(name))); !ok {
		return
	}
	tag, err := ParseLocale(strings.TrimSuffix(name, filepath.Ext(name)))
	if err != nil {
		return
	}

	m.reloadDirectory()
	m.logger.Info("reloaded locale", log.Fields{"locale": tag.String(), "file": name, "op": event.Op.String()})
	m.notify(tag)
}

// reloadDirectory re-reads the bundles and purges the cache
func (m *Manager) reloadDirectory() {
	m.mu.Lock()
	m.loadAllLocales()
	m.mu.Unlock()

	m.patterns.Purge()
}

// IsWatching returns whether file monitoring is active
func (m *Manager) IsWatching() bool {
	return m.watcher != nil
}
