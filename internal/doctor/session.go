package doctor

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNoSession is returned when committing without an open edit session.
	ErrNoSession = errors.New("no edit session open")
	// ErrUnknownField is returned for field names outside the remote schema.
	ErrUnknownField = errors.New("unknown doctor field")
)

// Session is the transient single-record edit buffer. At most one record is
// open for edit at a time; opening another record replaces the current
// session silently (last writer wins). The buffer holds a
// value copy of the record's attributes, never a live reference into the
// store.
type Session struct {
	mu      sync.Mutex
	store   *Store
	open    bool
	id      int64
	buffer  Attributes
	pending *Attachment
}

func NewSession(store *Store) *Session {
	return &Session{store: store}
}

// Open snapshots a record's attributes into the edit buffer. Any previously
// open session, including its pending attachment, is discarded.
func (s *Session) Open(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	s.id = rec.ID
	s.buffer = rec.Attributes
	s.pending = nil
}

// IsOpen reports whether a record is currently under edit.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Current returns the edited record's id and a copy of the buffer.
func (s *Session) Current() (int64, Attributes, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, s.buffer, s.open
}

// HasAttachment reports whether an image upload is pending.
func (s *Session) HasAttachment() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// SetField writes one string-valued field of the buffer. Values are stored
// verbatim; Year_of_Experience and Patients are never parsed into numbers.
// Premium is boolean-valued and has its own setter.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNoSession
	}
	switch name {
	case "Name":
		s.buffer.Name = value
	case "Address":
		s.buffer.Address = value
	case "Patients":
		s.buffer.Patients = value
	case "Year_of_Experience":
		s.buffer.YearOfExperience = value
	case "StartTime":
		s.buffer.StartTime = value
	case "EndTime":
		s.buffer.EndTime = value
	case "About":
		s.buffer.About = value
	case "Phone":
		s.buffer.Phone = value
	case "email":
		s.buffer.Email = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// SetPremium writes the one boolean field.
func (s *Session) SetPremium(v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNoSession
	}
	s.buffer.Premium = v
	return nil
}

// SetAttachment replaces the pending image. Independent of the field buffer;
// committing without one leaves the remote attachment as-is.
func (s *Session) SetAttachment(filename string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNoSession
	}
	s.pending = &Attachment{Filename: filename, Data: data}
	return nil
}

// Commit sends the buffer (and pending attachment, if any) as a full update
// of the open record. Success clears the session; the store has already
// re-fetched by the time Commit returns. Failure keeps the session open so
// the user can retry.
func (s *Session) Commit(ctx context.Context) error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return ErrNoSession
	}
	id := s.id
	buf := s.buffer
	pending := s.pending
	s.mu.Unlock()

	if err := s.store.Update(ctx, id, buf, pending); err != nil {
		return err
	}

	s.mu.Lock()
	// only clear if the committed record is still the one under edit
	if s.open && s.id == id {
		s.open = false
		s.pending = nil
		s.buffer = Attributes{}
	}
	s.mu.Unlock()
	return nil
}

// Cancel discards the buffer and pending attachment. Never touches the
// network.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	s.pending = nil
	s.buffer = Attributes{}
}
