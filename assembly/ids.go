// SPDX-License-Identifier: MIT

package assembly

import "strconv"

// seqID renders prefix + decimal sequence number ("n1", "e7").
func seqID(prefix byte, seq int) string {
	b := make([]byte, 0, 12)
	b = append(b, prefix)
	b = strconv.AppendInt(b, int64(seq), 10)

	return string(b)
}
