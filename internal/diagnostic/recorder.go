package diagnostic

import (
	"fmt"

	"automapper/internal/analyze"
	"automapper/internal/attr"
	"automapper/internal/automap"
	"automapper/internal/model"
)

// Codes of the diagnostics produced by a Recorder.
const (
	CodeWriteSuppressed = "write_suppressed"
	CodeMemberIgnored   = "member_ignored"
)

// Recorder turns mapping events into info diagnostics. It observes guarded writes that were
// suppressed and members removed from the tree by a skipper.
type Recorder struct {
	Diagnostics
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Suppressed implements instance.Observer.
func (r *Recorder) Suppressed(n model.Node, k attr.Key, attempted any) {
	r.AddInfo(CodeWriteSuppressed,
		fmt.Sprintf("%s %s already specified, %v not written", n.Kind(), k, attempted),
		"", nodeName(n))
}

// Skipper wraps s so every member it skips is recorded. A nil s skips nothing.
func (r *Recorder) Skipper(s automap.Skipper) automap.Skipper {
	return recordingSkipper{next: s, rec: r}
}

type recordingSkipper struct {
	next automap.Skipper
	rec  *Recorder
}

func (s recordingSkipper) Skips(owner analyze.TypeID, member string) bool {
	if s.next == nil || !s.next.Skips(owner, member) {
		return false
	}

	s.rec.AddInfo(CodeMemberIgnored, "member ignored by declaration", owner.String(), member)

	return true
}

type named interface {
	Name() string
}

func nodeName(n model.Node) string {
	if nn, ok := n.(named); ok {
		return nn.Name()
	}

	return ""
}
