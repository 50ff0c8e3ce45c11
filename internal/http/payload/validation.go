package payload

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"

	"crowdfunder/internal/core"

	"github.com/jellydator/validation"
)

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	cidRegex     = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	isAddress  = validation.Match(addressRegex).Error("must be a 0x prefixed 20 byte hex address")
	isCategory = validation.By(func(value any) error {
		s, _ := value.(string)
		if !core.IsCategory(s) {
			return errors.New("must be a known category")
		}
		return nil
	})
	isPositiveWei = validation.By(func(value any) error {
		s, _ := value.(string)
		if _, err := parseWei(s); err != nil {
			return err
		}
		return nil
	})
)

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// parseWei reads a positive base 10 amount of wei that fits in uint256.
func parseWei(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.New("must be a base 10 integer amount of wei")
	}
	if v.Sign() <= 0 {
		return nil, errors.New("must be greater than zero")
	}
	if v.BitLen() > 256 {
		return nil, errors.New("must fit in 256 bits")
	}
	return v, nil
}
