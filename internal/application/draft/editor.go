package draft

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/internal/domain/profile"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

// Editor drives the "add item" dialog for the repeatable collections of a
// Store. At most one dialog is open; its scratch entry is appended to the
// draft on Save and dropped on Cancel.
type Editor struct {
	store   *Store
	logger  logger.Logger
	open    bool
	kind    profile.CollectionKind
	scratch profile.Entry
}

func NewEditor(store *Store, log logger.Logger) *Editor {
	return &Editor{store: store, logger: log}
}

// State returns the kind of the open dialog, and false when closed.
func (e *Editor) State() (profile.CollectionKind, bool) {
	return e.kind, e.open
}

// OpenAdd opens the dialog for kind with an empty scratch entry. An already
// open dialog is replaced and its scratch entry is lost.
func (e *Editor) OpenAdd(kind profile.CollectionKind) {
	if e.open {
		e.logger.Warn("Discarding unsaved scratch entry",
			zap.String("previous_kind", string(e.kind)),
			zap.String("next_kind", string(kind)))
	}
	e.open = true
	e.kind = kind
	e.scratch = profile.NewEntry(kind)
}

// Scratch returns the entry being built. It is nil for an unknown kind.
func (e *Editor) Scratch() (profile.Entry, bool) {
	if !e.open {
		return nil, false
	}
	return e.scratch, true
}

// SetScratch replaces the whole scratch entry.
func (e *Editor) SetScratch(entry profile.Entry) error {
	if !e.open {
		return ErrNotOpen
	}
	if entry == nil || entry.Kind() != e.kind {
		return fmt.Errorf("%w: dialog %q", ErrScratchKind, e.kind)
	}
	e.scratch = entry
	return nil
}

// SetScratchField sets one field of the scratch entry from text.
func (e *Editor) SetScratchField(name, value string) error {
	if !e.open {
		return ErrNotOpen
	}
	next, err := profile.WithField(e.scratch, name, value)
	if err != nil {
		return err
	}
	e.scratch = next
	return nil
}

// Cancel closes the dialog without touching the draft.
func (e *Editor) Cancel() {
	e.reset()
}

// Save appends the scratch entry to the matching collection and closes the
// dialog. A dialog for an unknown kind is only closed.
func (e *Editor) Save() error {
	if !e.open {
		return ErrNotOpen
	}
	kind, scratch := e.kind, e.scratch
	e.reset()

	if scratch == nil {
		e.logger.Warn("Closed add dialog for unknown collection", zap.String("kind", string(kind)))
		return nil
	}
	if err := e.store.AppendToCollection(scratch); err != nil {
		return fmt.Errorf("save %s entry: %w", kind, err)
	}
	e.logger.Debug("Appended entry to draft", zap.String("kind", string(kind)), zap.Int("len", e.store.Len(kind)))
	return nil
}

func (e *Editor) reset() {
	e.open = false
	e.kind = ""
	e.scratch = nil
}
