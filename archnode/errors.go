// SPDX-License-Identifier: MIT

package archnode

import "github.com/pkg/errors"

var (
	// ErrBadNotation indicates a vertex configuration string that cannot be parsed.
	ErrBadNotation = errors.New("archnode: bad vertex configuration notation")

	// ErrUnknownNode indicates a letter or sequence that names no catalog entry.
	ErrUnknownNode = errors.New("archnode: unknown node")
)
