package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMediaAvailable is returned when no candidate survived selection in a tick
	ErrNoMediaAvailable = errors.New("no media available")

	// ErrMetadataTypeMismatch marks a property that is present but has an unexpected type.
	// It is only ever logged; extraction falls back to a default.
	ErrMetadataTypeMismatch = errors.New("metadata type mismatch")

	// ErrFilterRejected is matched by every *FilterRejectedError
	ErrFilterRejected = errors.New("filter rejected")

	// ErrStyleTransform is returned when a character has no styled variant
	ErrStyleTransform = errors.New("unable to fully transform")

	// ErrPublish wraps every PresenceSink failure
	ErrPublish = errors.New("publish presence")
)

// PropertyFetchError is a transport or query failure for one player service
type PropertyFetchError struct {
	Service  string
	Property string
	Err      error
}

func (e *PropertyFetchError) Error() string {
	return fmt.Sprintf("fetch %s from %s: %v", e.Property, e.Service, e.Err)
}

func (e *PropertyFetchError) Unwrap() error {
	return e.Err
}

// RejectReason says which content rule excluded a snapshot
type RejectReason string

const (
	ReasonNotWhitelisted    RejectReason = "not_whitelisted"
	ReasonNoURL             RejectReason = "no_url"
	ReasonBlacklistedArtist RejectReason = "blacklisted_artist"
)

// FilterRejectedError is returned by the content filter when a snapshot is excluded
type FilterRejectedError struct {
	Reason RejectReason
	// Detail names the offending url, artist or keyword when there is one
	Detail string
}

func (e *FilterRejectedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("filter rejected: %s", e.Reason)
	}
	return fmt.Sprintf("filter rejected: %s (%s)", e.Reason, e.Detail)
}

// Is lets errors.Is(err, ErrFilterRejected) match any rejection
func (e *FilterRejectedError) Is(target error) bool {
	return target == ErrFilterRejected
}
