package badger

import "fmt"

// Key namespaces. Series ids and sequence numbers are zero-padded
// decimals so lexicographic key order matches numeric order.
const (
	keyContractState = "STATE:CONTRACT"

	prefixSeriesPayload = "SERIES:PAYLOAD:"
	prefixTokenPayload  = "TOKEN:PAYLOAD:"
	prefixTokenOwner    = "TOKEN:OWNER:"  // + owner + ":" + token id -> token id
	prefixTokenSeries   = "TOKEN:SERIES:" // + series + ":" + seq -> token id
	prefixAllowed       = "POLICY:ALLOWED:"
	prefixReceipt       = "RECEIPT:PAYLOAD:" // + UUID v7 receipt id (time-ordered)
)

func seriesKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefixSeriesPayload, id))
}

func tokenKey(id string) []byte {
	return []byte(prefixTokenPayload + id)
}

func tokenOwnerKey(owner, tokenID string) []byte {
	return []byte(prefixTokenOwner + owner + ":" + tokenID)
}

func tokenSeriesKey(seriesID, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d:%020d", prefixTokenSeries, seriesID, seq))
}

func allowedKey(account string) []byte {
	return []byte(prefixAllowed + account)
}

func receiptKey(id string) []byte {
	return []byte(prefixReceipt + id)
}
