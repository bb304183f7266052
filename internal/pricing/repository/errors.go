package repository

import "errors"

var (
	ErrRuleNotFound     = errors.New("repository: pricing rule not found")
	ErrRuleCreateFailed = errors.New("repository: failed to create pricing rule")
	ErrRuleUpdateFailed = errors.New("repository: failed to update pricing rule")
)
