// SPDX-License-Identifier: Apache-2.0

package strarena

import "errors"

var (
	// ErrInvalidUTF8 is returned by Consume when the source yields bytes that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("strarena: consumed input is not valid UTF-8")

	// ErrBusy is the panic value raised when an arena is used while one of its Writers is open.
	ErrBusy = errors.New("strarena: arena is busy with an open writer")

	// ErrModified is the panic value raised when an Iter is advanced after its arena was modified.
	ErrModified = errors.New("strarena: arena modified during iteration")

	// ErrWriterClosed is the panic value raised when writing through a Writer that was already finished.
	ErrWriterClosed = errors.New("strarena: write to finished writer")
)
