package balance

import "errors"

// ErrInvalidConfiguration indicates a team count below the minimum of 2.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrInfeasiblePartition indicates a roster that cannot fill the
// requested teams evenly.
var ErrInfeasiblePartition = errors.New("infeasible partition")

// ErrCaptainOverflow indicates more captains than teams.
var ErrCaptainOverflow = errors.New("captain overflow")

// ErrUnknownStrategy indicates an unrecognized strategy name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ErrInternalConsistency indicates a strategy produced unequal team
// sizes after feasibility was already validated. It marks a logic
// defect, never a user-input error.
var ErrInternalConsistency = errors.New("internal consistency")
