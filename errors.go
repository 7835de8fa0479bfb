// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sigmax

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrFull is returned by Push when the queue is full from the calling
// producer's point of view: the candidate cell has not yet been consumed
// for its previous lap. It is a control-flow signal, not a failure — the
// value was not enqueued and the caller should retry (with backoff) or
// apply its own drop policy.
//
// ErrFull wraps [iox.ErrWouldBlock] for ecosystem consistency: code written
// against iox's generic classification (IsWouldBlock, IsSemantic) still
// recognizes ErrFull without needing to know about this package.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Push(value)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if sigmax.IsFull(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err // unreachable: Push never returns anything else
//	}
var ErrFull = fmt.Errorf("sigmax: queue is full: %w", iox.ErrWouldBlock)

// ErrEmpty is returned by Pop when no element has been fully published at
// the current logical tail. It is a control-flow signal, not a failure.
//
// ErrEmpty wraps [iox.ErrWouldBlock] for the same reason as ErrFull.
var ErrEmpty = fmt.Errorf("sigmax: queue is empty: %w", iox.ErrWouldBlock)

// IsFull reports whether err is (or wraps) ErrFull.
func IsFull(err error) bool {
	return errors.Is(err, ErrFull)
}

// IsEmpty reports whether err is (or wraps) ErrEmpty.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}

// IsWouldBlock reports whether err indicates the operation would block
// (ErrFull, ErrEmpty, or any other [iox.ErrWouldBlock]-derived error).
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
