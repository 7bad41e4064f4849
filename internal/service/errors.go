package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when no
	// build version was provided.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
