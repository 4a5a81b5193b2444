package redisrank

import (
	"fmt"
	"strconv"
)

// formatMemberID renders a product id as the sorted-set member string.
func formatMemberID(productID int64) string {
	return strconv.FormatInt(productID, 10)
}

// parseMemberID parses a sorted-set member (always a string, per protocol)
// back into a product id.
func parseMemberID(member any) (int64, error) {
	s, ok := member.(string)
	if !ok {
		return 0, fmt.Errorf("redisrank: unexpected member type %T", member)
	}
	return strconv.ParseInt(s, 10, 64)
}
