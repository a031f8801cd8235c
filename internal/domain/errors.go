package domain

import "errors"

var (
	ErrDegenerateWeights = errors.New("defect and collaborate payoffs are equal, defecting confers no advantage")
	ErrUnknownStrategy   = errors.New("unknown strategy")
)
