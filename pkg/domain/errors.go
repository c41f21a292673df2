package domain

import "errors"

var (
	// ErrNoReceiver is returned when a tab has no content collaborator to answer a message,
	// e.g. privileged or internal pages
	ErrNoReceiver = errors.New("could not establish connection, receiving end does not exist")

	// ErrTabNotFound is returned by hosts for unknown tab ids
	ErrTabNotFound = errors.New("tab not found")
)
