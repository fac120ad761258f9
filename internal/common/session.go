package common

// AccessTokenHeaderName is the gRPC metadata key carrying the session token
// issued by Login.
const AccessTokenHeaderName = "access_token"

// WipeByteArray zeroes b. The CLI calls it on passwords read from the
// terminal once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
