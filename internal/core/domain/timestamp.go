package domain

import "time"

// Timestamp is an optional modification time. The zero value is absent,
// meaning the file does not exist.
type Timestamp struct {
	t   time.Time
	set bool
}

// Some returns a present timestamp.
func Some(t time.Time) Timestamp {
	return Timestamp{t: t, set: true}
}

// None returns an absent timestamp.
func None() Timestamp {
	return Timestamp{}
}

// IsSet reports whether the timestamp is present.
func (ts Timestamp) IsSet() bool {
	return ts.set
}

// Time returns the instant. It is the zero time when absent.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// After reports whether both timestamps are present and ts is strictly later than other.
func (ts Timestamp) After(other Timestamp) bool {
	return ts.set && other.set && ts.t.After(other.t)
}

// String implements fmt.Stringer.
func (ts Timestamp) String() string {
	if !ts.set {
		return "<none>"
	}
	return ts.t.Format(time.RFC3339Nano)
}

// MaxTimestamp folds the input side: absent values are ignored and the result
// is absent only when every value is absent.
func MaxTimestamp(ts ...Timestamp) Timestamp {
	out := None()
	for _, t := range ts {
		if !t.set {
			continue
		}
		if !out.set || t.t.After(out.t) {
			out = t
		}
	}
	return out
}

// MinTimestampStrict folds the output side: any absent value makes the whole
// result absent.
func MinTimestampStrict(ts ...Timestamp) Timestamp {
	if len(ts) == 0 {
		return None()
	}
	out := ts[0]
	for _, t := range ts {
		if !t.set {
			return None()
		}
		if t.t.Before(out.t) {
			out = t
		}
	}
	return out
}

// InputTimestamp is the freshness of a module's inputs: a rebuild policy for
// policy-governed modules, a folded timestamp for file-backed ones.
type InputTimestamp struct {
	policy    RebuildPolicy
	hasPolicy bool
	ts        Timestamp
}

// InputFromPolicy returns an input timestamp carrying a rebuild policy.
func InputFromPolicy(p RebuildPolicy) InputTimestamp {
	return InputTimestamp{policy: p, hasPolicy: true}
}

// InputFromTimestamp returns an input timestamp carrying a file time.
func InputFromTimestamp(ts Timestamp) InputTimestamp {
	return InputTimestamp{ts: ts}
}

// Policy returns the policy and true when the input is policy-governed.
func (in InputTimestamp) Policy() (RebuildPolicy, bool) {
	return in.policy, in.hasPolicy
}

// Timestamp returns the folded timestamp. It is absent for policy-governed inputs.
func (in InputTimestamp) Timestamp() Timestamp {
	return in.ts
}

// NeedsRebuild is the staleness rule. A module is rebuilt when its outputs are
// incomplete, when its policy is RebuildAlways, or when its inputs are strictly
// newer than its oldest output.
func NeedsRebuild(in InputTimestamp, out Timestamp) bool {
	if !out.IsSet() {
		return true
	}
	if p, ok := in.Policy(); ok {
		return p == RebuildAlways
	}
	return in.Timestamp().After(out)
}
