// Package auth builds the query-string credential the SecuritySpy
// webserver expects on every request.
package auth

import "encoding/base64"

// Token encodes the username and password into the value of the auth
// query parameter. SecuritySpy accepts the standard basic-auth encoding
// as a URL value instead of an Authorization header.
func Token(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
