package vtinput

// KeyProcessor runs the single cooperative loop that consumes KeyPresses
// produced by a KeyParser: it throttles bursts of mouse events, keeps
// processing CPR responses even after the application has asked to exit,
// and leaves any other post-exit events queued as typeahead.
type KeyProcessor struct {
	queue     []KeyPress
	exiting   bool
	typeahead []KeyPress
}

// NewKeyProcessor returns an empty processor.
func NewKeyProcessor() *KeyProcessor {
	return &KeyProcessor{}
}

// Enqueue appends newly parsed KeyPresses to the processing queue.
func (k *KeyProcessor) Enqueue(presses ...KeyPress) {
	k.queue = append(k.queue, presses...)
}

// RequestExit marks the processor as draining: from here on, only CPR
// responses are processed inline; everything else is pushed to typeahead
// for the next consumer.
func (k *KeyProcessor) RequestExit() {
	k.exiting = true
}

// Typeahead returns (and clears) events that arrived after exit was
// requested and were not CPR responses.
func (k *KeyProcessor) Typeahead() []KeyPress {
	out := k.typeahead
	k.typeahead = nil
	return out
}

// Process drains the queue, applying the mouse-burst throttle (if 10 or
// more consecutive mouse events are queued, all but the trailing 10 are
// dropped before processing begins) and the exit/CPR/typeahead policy, and
// returns the events to actually act on this iteration.
func (k *KeyProcessor) Process() []KeyPress {
	k.throttleMouseBursts()

	queue := k.queue
	k.queue = nil

	if !k.exiting {
		return queue
	}

	var out []KeyPress
	for _, kp := range queue {
		if kp.Key == KeyCPR {
			out = append(out, kp)
			continue
		}
		k.typeahead = append(k.typeahead, kp)
	}
	return out
}

// throttleMouseBursts drops all but the trailing 10 events of any run of
// 10 or more consecutive mouse events in the queue.
func (k *KeyProcessor) throttleMouseBursts() {
	n := len(k.queue)
	runStart := -1
	i := 0
	var filtered []KeyPress
	for i < n {
		if k.queue[i].Key == KeyMouse {
			runStart = i
			j := i
			for j < n && k.queue[j].Key == KeyMouse {
				j++
			}
			run := k.queue[runStart:j]
			if len(run) >= 10 {
				run = run[len(run)-10:]
			}
			filtered = append(filtered, run...)
			i = j
			continue
		}
		filtered = append(filtered, k.queue[i])
		i++
	}
	k.queue = filtered
}
