// Package trakt provides a typed client for the Trakt.tv REST API.
//
// Trakt tracks what people watch. Its API exposes catalogue metadata for
// shows and movies (summaries, cast and crew, trending and popular lists) as
// well as per-user watch history. This package maps each endpoint to a typed
// Go method that issues exactly one GET request and decodes the JSON body.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: The root client holding the immutable settings and the transport
//   - Namespaces: Shows, Movies and Users, each scoped to its URL segment
//   - Media queries: request builders shared by the Shows and Movies namespaces
//   - Transport: stamps the Trakt headers, logs, records metrics, decodes responses
//   - Errors: argument validation errors and structured API errors
//
// # Usage
//
// Create a client with your Trakt application's client id:
//
//	client, err := trakt.New(trakt.Settings{ClientID: "your-client-id"},
//		trakt.WithLogger(zerolog.New(os.Stderr)),
//		trakt.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	res, err := client.Shows.Trending(ctx, trakt.ListOptions{
//		Pagination: &trakt.Pagination{Page: 1, Limit: 10},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, item := range res.Data {
//		fmt.Println(item.Watchers, item.Show.Title)
//	}
//
// # Error Handling
//
// Required arguments are checked before any request is built. A missing
// argument yields an *InvalidArgumentError that matches ErrInvalidArgument:
//
//	_, err := client.Shows.Summary(ctx, "")
//	var argErr *trakt.InvalidArgumentError
//	if errors.As(err, &argErr) {
//		fmt.Println(argErr.Param) // "showId"
//	}
//
// Non-2xx responses are returned as *APIError. Errors produced by the
// underlying HTTP client are returned as is.
//
// # Thread Safety
//
// A Client is safe for concurrent use. Settings are fixed at construction and
// no method mutates shared state.
package trakt
