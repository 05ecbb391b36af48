package parsing

import (
	"errors"
	"fmt"
)

// ErrContractViolation is matched by every ContractError via errors.Is.
var ErrContractViolation = errors.New("contract violation")

// ContractError reports malformed data handed to the matching engine by a caller,
// such as a skill set holding empty or unnormalized entries. It signals a
// programming error, not bad user input.
type ContractError struct {
	Field   string
	Message string
}

func (e *ContractError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("contract violation in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("contract violation: %s", e.Message)
}

func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}
