package qlearning

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/samuelfneumann/gotabular/table"
)

// Saved agent files start with a fixed header so that Load can reject
// files that were not produced by Save before touching the payload.
const (
	formatMagic   string = "gotabular/qlearning"
	formatVersion int    = 1
)

type header struct {
	Magic   string
	Version int
}

// snapshot is the serialized form of an agent: the value table and the
// five hyperparameters, nothing else. The RNG state and evaluation
// mode are not persisted.
type snapshot[S comparable, A comparable] struct {
	Table          *table.Table[S, A]
	LearningRate   float64
	DiscountFactor float64
	Epsilon        float64
	EpsilonDecay   float64
	EpsilonMin     float64
}

// Save serializes the agent's value table and hyperparameters to the
// file at filename, overwriting it if it exists. The encoding is gob,
// which round-trips every table entry and parameter bit for bit and
// cannot execute code during decoding.
func (q *QLearning[S, A]) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return &AgentError{
			Op:  "save",
			Err: fmt.Errorf("could not create save file: %v", err),
		}
	}
	defer file.Close()

	enc := gob.NewEncoder(file)
	if err := enc.Encode(header{formatMagic, formatVersion}); err != nil {
		return &AgentError{
			Op:  "save",
			Err: fmt.Errorf("could not encode header: %v", err),
		}
	}

	snap := snapshot[S, A]{
		Table:          q.table,
		LearningRate:   q.learningRate,
		DiscountFactor: q.discountFactor,
		Epsilon:        q.epsilon,
		EpsilonDecay:   q.epsilonDecay,
		EpsilonMin:     q.epsilonMin,
	}
	if err := enc.Encode(snap); err != nil {
		return &AgentError{
			Op:  "save",
			Err: fmt.Errorf("could not encode agent: %v", err),
		}
	}

	return nil
}

// Load replaces the agent's value table and all five hyperparameters
// with the contents of a file previously written by Save. The
// replacement is atomic: the file is fully decoded and validated
// before any field of the agent changes, so a failed Load leaves the
// agent untouched. A file with a missing or mismatched header, an
// undecodable payload, or out-of-domain parameters results in a
// format error (see IsFormatError).
//
// Load trusts the source to the extent that any file decodes: only
// load files you created yourself or trust. The gob format cannot run
// code while decoding, so a hostile file can at worst produce a
// rejected or nonsensical agent, never arbitrary side effects.
func (q *QLearning[S, A]) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return &AgentError{
			Op:  "load",
			Err: fmt.Errorf("could not open save file: %v", err),
		}
	}
	defer file.Close()

	dec := gob.NewDecoder(file)

	var head header
	if err := dec.Decode(&head); err != nil {
		return &AgentError{
			Op:  "load",
			Err: fmt.Errorf("%w: could not decode header: %v", errBadFormat, err),
		}
	}
	if head.Magic != formatMagic {
		return &AgentError{
			Op:  "load",
			Err: fmt.Errorf("%w: file is not a saved agent", errBadFormat),
		}
	}
	if head.Version != formatVersion {
		return &AgentError{
			Op: "load",
			Err: fmt.Errorf("%w: unsupported version %d, want %d",
				errBadFormat, head.Version, formatVersion),
		}
	}

	var snap snapshot[S, A]
	if err := dec.Decode(&snap); err != nil {
		return &AgentError{
			Op:  "load",
			Err: fmt.Errorf("%w: could not decode agent: %v", errBadFormat, err),
		}
	}
	if snap.Table == nil {
		return &AgentError{
			Op:  "load",
			Err: fmt.Errorf("%w: saved agent has no value table", errBadFormat),
		}
	}

	// The saved parameters must lie in the domains an agent can
	// produce. Epsilon has no upper check here: decaying with a factor
	// above 1 can legitimately carry it past 1, and a saved agent must
	// always load.
	switch {
	case snap.LearningRate <= 0 || snap.LearningRate > 1:
		return loadDomainError("learning rate", snap.LearningRate)
	case snap.DiscountFactor < 0 || snap.DiscountFactor > 1:
		return loadDomainError("discount factor", snap.DiscountFactor)
	case snap.Epsilon < 0:
		return loadDomainError("epsilon", snap.Epsilon)
	case snap.EpsilonDecay <= 0:
		return loadDomainError("epsilon decay", snap.EpsilonDecay)
	case snap.EpsilonMin < 0 || snap.EpsilonMin > 1:
		return loadDomainError("minimum epsilon", snap.EpsilonMin)
	}

	q.table = snap.Table
	q.learningRate = snap.LearningRate
	q.discountFactor = snap.DiscountFactor
	q.epsilon = snap.Epsilon
	q.epsilonDecay = snap.EpsilonDecay
	q.epsilonMin = snap.EpsilonMin

	return nil
}

// loadDomainError reports a saved hyperparameter outside its domain
func loadDomainError(name string, value float64) error {
	return &AgentError{
		Op: "load",
		Err: fmt.Errorf("%w: saved %s out of domain: %v", errBadFormat, name,
			value),
	}
}
