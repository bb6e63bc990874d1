// Package state tracks which external collaborators are still usable. An
// operation flips its flag off after a hard failure instead of crashing the
// worker.
package state

import "sync"

type Service int

const (
	Facial Service = iota
	Voice
	Text
	Dashboard
	Redis
)

type State struct {
	sync.RWMutex

	Facial    bool
	Voice     bool
	Text      bool
	Dashboard bool
	Redis     bool
}

func NewState() *State {
	return &State{
		Facial:    true,
		Voice:     true,
		Text:      true,
		Dashboard: true,
		Redis:     true,
	}
}

func (s *State) Get(svc Service) bool {
	s.RLock()
	defer s.RUnlock()
	{
		switch svc {
		case Facial:
			return s.Facial

		case Voice:
			return s.Voice

		case Text:
			return s.Text

		case Dashboard:
			return s.Dashboard

		case Redis:
			return s.Redis
		}
	}
	return false
}

func (s *State) Set(svc Service, state bool) {
	s.Lock()
	defer s.Unlock()
	{
		switch svc {
		case Facial:
			s.Facial = state

		case Voice:
			s.Voice = state

		case Text:
			s.Text = state

		case Dashboard:
			s.Dashboard = state

		case Redis:
			s.Redis = state
		}
	}
}
