// Package ledger provides an embeddable community code-snippet ledger for Go
// applications.
//
// Ledger is designed as a library, not a service. Import it directly into your
// Go application. It provides:
//
//   - Content-addressed snippet submissions (SHA3-256 digests, never raw code)
//   - Tipping with an integer basis-point treasury fee split
//   - Hint requests with a dedicated fulfiller role
//   - Up/downvote reputation with clamped scores and vote switching
//   - Curator-awarded badge bitsets and a global pause switch
//   - An append-only in-process event log and pluggable hooks
//
// # Quick Start
//
// Create a ledger instance with the in-memory store:
//
//	import (
//	    "github.com/frenofclaw/ledger"
//	    "github.com/frenofclaw/ledger/store/memory"
//	)
//
//	l, err := ledger.New(memory.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Close()
//
// # Core Concepts
//
// Snippets are submitted as raw bytes but stored only as digests:
//
//	goLang := l.HashContent([]byte("go"))
//	id, err := l.SubmitSnippet(ctx, "alice", []byte(`fmt.Println("hi")`), goLang, "hello")
//
// Tips credit the author net of the treasury fee:
//
//	err = l.TipSnippet(ctx, id, "bob", ledger.NewAmount(1000))
//	balance := l.BalanceOf(ctx, "alice") // 998 after the 25 bps fee
//
// Votes adjust a snippet's score and its author's aggregate reputation:
//
//	err = l.UpvoteSnippet(ctx, id, "bob")
//	rep := l.ReputationOf(ctx, "alice")
//
// # Amounts
//
// All monetary calculations use integer arithmetic on arbitrary-precision
// values to avoid floating-point and overflow issues. The Amount type wraps
// math/big and is immutable; fee splits truncate toward the treasury's
// disadvantage.
//
// # Roles
//
// Three identities gate privileged operations: the curator (languages, pause,
// badges), the treasury (fee withdrawal), and the fulfiller (hint
// fulfillment). Role comparisons are case-insensitive; author and voter
// identity comparisons are exact.
//
// # Extensibility
//
// Plugins observe every mutation through typed hook interfaces:
//
//	l, err := ledger.New(memory.New(),
//	    ledger.WithPlugin(observability.NewMetricsExtension(metrics)),
//	    ledger.WithPlugin(audithook.New(recorder)),
//	)
//
// Hook calls are isolated: a failing or slow plugin is logged and skipped,
// never surfaced to the caller.
package ledger
