package core

import (
	"fmt"
	"strconv"
)

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrReentrancyBlocked a mutating operation re-entered the engine
	ErrReentrancyBlocked ErrorCode = 100001
	// ErrConfigurationMismatch asset/oracle registry config is unusable
	ErrConfigurationMismatch ErrorCode = 100002

	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100101
	// ErrUnsupportedAsset unregistered collateral asset
	ErrUnsupportedAsset ErrorCode = 100102
	// ErrInsufficientBalance redeem or burn exceeds recorded balance
	ErrInsufficientBalance ErrorCode = 100103
	// ErrTransferFailed external transfer collaborator failed
	ErrTransferFailed ErrorCode = 100104
	// ErrMintFailed external mint collaborator failed
	ErrMintFailed ErrorCode = 100105
	// ErrBrokenHealthFactor operation would leave or find the account unsafe
	ErrBrokenHealthFactor ErrorCode = 100106
	// ErrHealthFactorOkay liquidation attempted on a solvent account
	ErrHealthFactorOkay ErrorCode = 100107
	// ErrLiquidationIneffective liquidation did not improve the target's position
	ErrLiquidationIneffective ErrorCode = 100108
	// ErrInsufficientCollateralToLiquidate seizure exceeds deposited collateral
	ErrInsufficientCollateralToLiquidate ErrorCode = 100109

	// ErrOracleUnavailable no registered oracle for the asset
	ErrOracleUnavailable ErrorCode = 100201
	// ErrStalePrice oracle price is outside the freshness window
	ErrStalePrice ErrorCode = 100202
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

// HealthFactorError carries the offending ratio alongside the code.
type HealthFactorError struct {
	Code   ErrorCode
	Factor HealthFactor
}

func (e *HealthFactorError) Error() string {
	return fmt.Sprintf("%s: health factor %s", e.Code, e.Factor)
}

// Is makes errors.Is(err, core.ErrBrokenHealthFactor) work on wrapped ratios.
func (e *HealthFactorError) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}
