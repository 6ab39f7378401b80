package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress returns whether the address is a well-formed hex address
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	// accept the EIP-55 checksum form or the all-lowercase form
	checksum := common.HexToAddress(address).Hex()
	return address == checksum || address == strings.ToLower(checksum)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
