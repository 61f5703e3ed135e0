package code

import "strconv"

// authMessage builds the MAC input: "{10-bit key id}|{date}|{hours}".
// The layout is load-bearing; generator and validator must produce
// byte-identical messages for the same (key id, hour) pair.
func authMessage(keyIDBits, date string, hours int64) []byte {
	msg := make([]byte, 0, len(keyIDBits)+len(date)+22)
	msg = append(msg, keyIDBits...)
	msg = append(msg, '|')
	msg = append(msg, date...)
	msg = append(msg, '|')
	msg = strconv.AppendInt(msg, hours, 10)
	return msg
}
