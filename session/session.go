// This file is part of Romload.
//
// Romload is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romload is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romload.  If not, see <https://www.gnu.org/licenses/>.

// Package session sequences the opening and closing of a cartridge. The
// cartridge image is always loaded first, after which any number of
// additional steps can be run in order. Steps are closed in reverse order.
//
// Only one cartridge can be open in a session at any one time.
package session

import (
	"fmt"
	"io"

	"github.com/jetsetilly/romload/cartridgeloader"
	"github.com/jetsetilly/romload/curated"
	"github.com/jetsetilly/romload/logger"
)

// Sentinal error patterns.
const (
	AlreadyOpen = "session: %s is already open"
	StepFailed  = "session: %s: %v"
	NoCartridge = "session: no cartridge could be opened"
)

// Step is a single part of opening a cartridge. The Open function is called
// with the loaded cartridge. The Close function is called only if Open
// succeeded. Either function can be nil.
type Step struct {
	Name  string
	Open  func(cl *cartridgeloader.Loader) error
	Close func()
}

// Session sequences the opening and closing of a cartridge.
type Session struct {
	// NewLoader is used to create the loader for a filename. Defaults to
	// cartridgeloader.NewLoader()
	NewLoader func(filename string) cartridgeloader.Loader

	steps []Step

	// loader is nil when there is no open cartridge
	loader *cartridgeloader.Loader

	// number of steps that have been opened
	opened int
}

// NewSession is the preferred method of initialisation for the Session type.
// The steps are run in the order specified, after the cartridge has been
// loaded.
func NewSession(steps ...Step) *Session {
	return &Session{
		NewLoader: cartridgeloader.NewLoader,
		steps:     steps,
	}
}

// Loader returns the loader for the currently open cartridge. Returns nil if
// there is no open cartridge.
func (s *Session) Loader() *cartridgeloader.Loader {
	return s.loader
}

// IsOpen returns true if there is an open cartridge.
func (s *Session) IsOpen() bool {
	return s.loader != nil
}

// Open the cartridge and run every step in order. If any step fails then the
// steps that have already been opened are closed in reverse order and the
// error returned. Problems loading the cartridge data are also written to
// diagnostics, which can be nil.
func (s *Session) Open(filename string, diagnostics io.Writer) error {
	if s.loader != nil {
		return curated.Errorf(AlreadyOpen, s.loader.Filename)
	}

	cl := s.NewLoader(filename)
	err := cl.Load()
	if err != nil {
		cl.Close()
		if diagnostics != nil {
			io.WriteString(diagnostics, fmt.Sprintf("%v\n", err))
		}
		return curated.Errorf(StepFailed, "rom", err)
	}
	logger.Logf(logger.Allow, "session", "opened %s", cl.ShortName())

	s.loader = &cl
	s.opened = 0

	for _, st := range s.steps {
		if st.Open != nil {
			err := st.Open(s.loader)
			if err != nil {
				logger.Logf(logger.Allow, "session", "%s: %v", st.Name, err)
				s.Close()
				return curated.Errorf(StepFailed, st.Name, err)
			}
		}
		s.opened++
	}

	return nil
}

// OpenFirst tries to open each filename in turn until one succeeds. Returns
// the filename that was opened.
func (s *Session) OpenFirst(filenames []string, diagnostics io.Writer) (string, error) {
	for _, fn := range filenames {
		err := s.Open(fn, diagnostics)
		if err == nil {
			return fn, nil
		}
		if curated.Is(err, AlreadyOpen) {
			return "", err
		}
	}
	return "", curated.Errorf(NoCartridge)
}

// Close the open cartridge. Steps are closed in the reverse of the order they
// were opened. Does nothing if there is no open cartridge.
func (s *Session) Close() {
	if s.loader == nil {
		return
	}

	for i := s.opened - 1; i >= 0; i-- {
		if s.steps[i].Close != nil {
			s.steps[i].Close()
		}
	}
	s.opened = 0

	s.loader.Close()
	logger.Logf(logger.Allow, "session", "closed %s", s.loader.ShortName())
	s.loader = nil
}
