package driver

// Stage identifies a pipeline phase for progress reporting.
type Stage uint8

const (
	StageLoad Stage = iota
	StageTokenize
	StageParse
	StageResolve
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageTokenize:
		return "tokenize"
	case StageParse:
		return "parse"
	case StageResolve:
		return "resolve"
	default:
		return "stage(?)"
	}
}

// Status is the state of a file within a stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
	StatusCached
)

// Event is one progress notification from a directory check.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// Sink receives progress events. Implementations must be safe for
// concurrent Send calls.
type Sink interface {
	Send(Event)
}

// ChannelSink forwards events to a channel, dropping when full so the
// pipeline never blocks on a slow consumer.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Send(ev Event) {
	select {
	case s.Ch <- ev:
	default:
	}
}
