// Package trelloclient is the supported constructor for
// github.com/pluralsight/trello-helper clients. It validates the
// configuration, normalizes the endpoint, and wires the internal client
// implementation behind the trello.Client interface.
package trelloclient
