package state

import "sync"

// Service names a collaborator whose availability the session tracks.
type Service int

const (
	Classifier Service = iota
	Transcriber
	MusicRenderer
	VisualRenderer
)

// State holds the per-session availability flags. Collaborator adapters
// start available; renderers start not ready and flip once the client
// signals readiness (the audio context needs a user gesture first).
type State struct {
	sync.RWMutex

	Classifier  bool
	Transcriber bool

	MusicRenderer  bool
	VisualRenderer bool
}

func NewState() *State {
	return &State{
		Classifier:  true,
		Transcriber: true,
	}
}

func (s *State) Get(svc Service) bool {
	s.RLock()
	defer s.RUnlock()
	{
		switch svc {
		case Classifier:
			return s.Classifier

		case Transcriber:
			return s.Transcriber

		case MusicRenderer:
			return s.MusicRenderer

		case VisualRenderer:
			return s.VisualRenderer
		}
	}
	return false
}

func (s *State) Set(svc Service, state bool) {
	s.Lock()
	defer s.Unlock()
	{
		switch svc {
		case Classifier:
			s.Classifier = state

		case Transcriber:
			s.Transcriber = state

		case MusicRenderer:
			s.MusicRenderer = state

		case VisualRenderer:
			s.VisualRenderer = state
		}
	}
}
