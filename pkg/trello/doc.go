// Package trello defines the public API surface of the Trello client:
// the Client interface and its per-resource client interfaces, the
// domain types, the error taxonomy, and the Config used to construct a
// client.
//
// Use github.com/pluralsight/trello-helper/pkg/trelloclient to create a
// working client:
//
//	client, err := trelloclient.New(&trello.Config{
//		Key:   os.Getenv("TRELLO_KEY"),
//		Token: os.Getenv("TRELLO_TOKEN"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	card, err := client.Cards().Get(ctx, "cardID", trello.Arguments{"fields": "name,desc"})
//
// Reads that hit the API's rate limit are retried transparently after a
// fixed delay; callers only observe eventual success or a non-rate-limit
// failure. Writes surface every error, including 429, immediately.
package trello
