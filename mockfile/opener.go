package mockfile

import (
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/michelangelo13/rethinkdb/internal/resource"
	"github.com/sasha-s/go-deadlock"
)

// State is the lifecycle state of the file behind an opener.
type State int

const (
	// NoFile means nothing has been created yet.
	NoFile State = iota
	// Temporary means the file exists in its temporary location.
	Temporary
	// Permanent means the file was moved to its final location.
	Permanent
	// Unlinked means the file was removed.
	Unlinked
)

func (s State) String() string {
	switch s {
	case NoFile:
		return "NoFile"
	case Temporary:
		return "Temporary"
	case Permanent:
		return "Permanent"
	case Unlinked:
		return "Unlinked"
	default:
		return "Unknown"
	}
}

// mockFileName stands in for a path; in-memory files have none.
const mockFileName = "<mock file>"

// Source states each lifecycle operation may be called from.
var (
	fromNoFile    = mapset.NewThreadUnsafeSet(NoFile)
	fromTemporary = mapset.NewThreadUnsafeSet(Temporary)
	fromExisting  = mapset.NewThreadUnsafeSet(Temporary, Permanent)
)

// Opener is the contract serializer bootstrap code uses to provision its file.
type Opener interface {
	FileName() string
	OpenCreateTemporary() File
	MoveToPermanent()
	OpenExisting() File
	Unlink()
}

// FileOpener provisions MockFile handles on one shared Buffer and tracks
// the file through NoFile, Temporary, Permanent and Unlinked. Calling an
// operation from a state that does not permit it aborts.
type FileOpener struct {
	mu       deadlock.Mutex
	state    State
	file     *Buffer
	semantic *Buffer // nil unless WithSemanticChecking
	budget   *resource.Budget
	env      *env
}

var _ Opener = (*FileOpener)(nil)

// NewFileOpener creates an opener in state NoFile with an empty file.
func NewFileOpener(opts ...Option) *FileOpener {
	o := buildOptions(opts)

	budget := resource.NewBudget(o.memoryLimit)
	fo := &FileOpener{
		state:  NoFile,
		file:   newBuffer(budget),
		budget: budget,
		env:    newEnv(o),
	}
	if o.semanticChecking {
		fo.semantic = newBuffer(budget)
	}
	return fo
}

// FileName returns a fixed placeholder name.
func (fo *FileOpener) FileName() string {
	return mockFileName
}

// OpenCreateTemporary creates the file in its temporary location and returns
// a read-write handle. Only valid from NoFile.
func (fo *FileOpener) OpenCreateTemporary() File {
	fo.mu.Lock()
	defer fo.mu.Unlock()

	fo.transition("OpenCreateTemporary", fromNoFile, Temporary)
	return newMockFile(ModeReadWrite, fo.file, fo.env)
}

// MoveToPermanent promotes the temporary file. Only valid from Temporary.
func (fo *FileOpener) MoveToPermanent() {
	fo.mu.Lock()
	defer fo.mu.Unlock()

	fo.transition("MoveToPermanent", fromTemporary, Permanent)
}

// OpenExisting returns another read-write handle on the same contents.
// Only valid while the file exists.
func (fo *FileOpener) OpenExisting() File {
	fo.mu.Lock()
	defer fo.mu.Unlock()

	fo.require("OpenExisting", fromExisting)
	return newMockFile(ModeReadWrite, fo.file, fo.env)
}

// Unlink removes the file. Only valid while the file exists.
func (fo *FileOpener) Unlink() {
	fo.mu.Lock()
	defer fo.mu.Unlock()

	fo.transition("Unlink", fromExisting, Unlinked)
}

// OpenSemanticCheckingFile returns a fresh stream over the semantic-checking
// buffer, which is separate from the file contents. The opener must have
// been created WithSemanticChecking.
func (fo *FileOpener) OpenSemanticCheckingFile() *SemanticCheckingFile {
	if fo.semantic == nil {
		fo.env.violate("OpenSemanticCheckingFile", "semantic checking is not enabled")
	}
	return newSemanticCheckingFile(fo.semantic, fo.env)
}

// State returns the current lifecycle state.
func (fo *FileOpener) State() State {
	fo.mu.Lock()
	defer fo.mu.Unlock()
	return fo.state
}

// Contents returns a copy of the file contents.
func (fo *FileOpener) Contents() []byte {
	return fo.file.Bytes()
}

// MemoryUsage returns the bytes held by the opener's buffers.
func (fo *FileOpener) MemoryUsage() int64 {
	return fo.budget.Used()
}

func (fo *FileOpener) require(op string, allowed mapset.Set[State]) {
	if !allowed.Contains(fo.state) {
		fo.env.violate(op, "not permitted in state %s (allowed: %s)", fo.state, describeStates(allowed))
	}
}

func (fo *FileOpener) transition(op string, allowed mapset.Set[State], to State) {
	fo.require(op, allowed)

	from := fo.state
	fo.state = to
	fo.env.metrics.RecordTransition(from, to)
	fo.env.logger.LogTransition(op, from, to)
}

func describeStates(set mapset.Set[State]) string {
	states := set.ToSlice()
	slices.Sort(states)

	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
