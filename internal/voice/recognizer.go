package voice

// Recognizer is the capability the surrounding app provides for turning
// speech into text. The core never touches audio; it only consumes the
// transcript strings the recognizer delivers.
type Recognizer interface {
	Start() error
	Stop() error
	Transcripts() <-chan string
}

// ScriptedRecognizer replays canned transcripts. It stands in for a
// real speech-to-text engine in tests and demos.
type ScriptedRecognizer struct {
	script []string
	out    chan string
}

func NewScriptedRecognizer(script ...string) *ScriptedRecognizer {
	return &ScriptedRecognizer{
		script: script,
		out:    make(chan string),
	}
}

func (r *ScriptedRecognizer) Start() error {
	go func() {
		for _, line := range r.script {
			r.out <- line
		}
		close(r.out)
	}()
	return nil
}

func (r *ScriptedRecognizer) Stop() error {
	return nil
}

func (r *ScriptedRecognizer) Transcripts() <-chan string {
	return r.out
}
