// Package client provides the HTTP clients and the request/response plumbing every endpoint
// function in the api packages is built on.
//
// # Clients
//
// A *Client talks to a server anonymously, an *AuthenticatedClient sends an access token with
// every request. Endpoints that require a token only accept the latter:
//
//	c, err := client.NewAuthenticated("https://mastodon.example", token,
//	    client.WithTimeout(10*time.Second),
//	    client.WithRaiseOnUnexpectedStatus(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	account, err := accounts.VerifyCredentials(ctx, c)
//
// Clients are immutable once built. WithHeaders, WithCookies, WithTimeout and WithAuthHeader
// return new clients that share nothing with the original.
//
// # Responses
//
// Every endpoint comes in four forms. The Detailed forms return a *Response carrying the status
// code, raw body and headers next to the parsed result, the plain forms return only the parsed
// result, and the Async forms of each return a *Future.
//
// Documented error statuses are not Go errors: a 422 answered with a validation error is
// returned as a parsed result whose ValidationError field is set. Only a status the endpoint
// does not document can become an *errors.UnexpectedStatusError, and only when the client was
// built with WithRaiseOnUnexpectedStatus; otherwise the response is returned with a nil Parsed.
package client
