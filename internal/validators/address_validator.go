package validators

import (
	"strings"

	"homevalue-aggregator/internal/errors"
)

type addressValidator struct{}

func NewAddressValidator() AddressValidator {
	return &addressValidator{}
}

// ValidateAddress rejects missing or blank addresses. The address is otherwise
// opaque: it is passed through URL-escaped to the providers, so no structural
// checks apply.
func (v *addressValidator) ValidateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errors.ErrAddressRequired
	}
	return nil
}
