package mpd

// PlayState is the daemon's playback mode as reported by mpc status.
type PlayState string

const (
	StatePlaying PlayState = "playing"
	StatePaused  PlayState = "paused"
	StateStopped PlayState = "stopped"
)

// VolumeUnavailable is the Status.Volume value reported when the daemon has
// no software volume control (e.g. hardware mixer outputs, where mpc prints
// "volume: n/a").
const VolumeUnavailable = -1

// Track is one library entry as decoded from the mpc wire format.
// File is the only field guaranteed unique; queue operations key on it.
type Track struct {
	Artist string
	Album  string
	Disc   string
	Track  string
	Title  string
	File   string
}

// String returns a short human-readable description of the track.
func (t Track) String() string {
	switch {
	case t.Artist != "" && t.Title != "":
		return t.Artist + " - " + t.Title
	case t.Title != "":
		return t.Title
	default:
		return t.File
	}
}

// Status is a point-in-time snapshot of daemon playback state. It is rebuilt
// from scratch on every query and never mutated.
type Status struct {
	// Track is the currently loaded track, nil when the queue is empty or
	// nothing is loaded.
	Track *Track

	// State is the playback mode. Defaults to StateStopped when the status
	// output carries no playback line (stopped daemons print none).
	State PlayState

	// Index is the 1-based position of the current track in the queue.
	Index int

	// Total is the number of tracks in the queue.
	Total int

	// Elapsed is the playback progress of the current track in percent.
	Elapsed int

	// Volume is the output volume in percent, or VolumeUnavailable.
	Volume int
}

// Playing reports whether the daemon is actively playing.
func (s Status) Playing() bool {
	return s.State == StatePlaying
}

// Stats summarizes the daemon's music library.
type Stats struct {
	Artists int
	Albums  int
	Songs   int
}
