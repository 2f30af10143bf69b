// Copyright (c) 2025 BVK Chaitanya

package trade

// Result is the business outcome of one trade attempt. Results are
// values, not errors, so callers can branch deterministically.
type Result string

const (
	SUCCESS                Result = "SUCCESS"
	FAIL_INVALID_TRADE     Result = "FAIL_INVALID_TRADE"
	FAIL_NULL              Result = "FAIL_NULL"
	FAIL_TRADE_RULE_DENIAL Result = "FAIL_TRADE_RULE_DENIAL"
	FAIL_CANNOT_AFFORD     Result = "FAIL_CANNOT_AFFORD"
	FAIL_OUT_OF_STOCK      Result = "FAIL_OUT_OF_STOCK"
	FAIL_NO_OUTPUT_SPACE   Result = "FAIL_NO_OUTPUT_SPACE"
	FAIL_NO_INPUT_SPACE    Result = "FAIL_NO_INPUT_SPACE"
)

func (r Result) IsSuccess() bool {
	return r == SUCCESS
}
