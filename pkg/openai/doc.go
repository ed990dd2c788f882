// Package openai provides request descriptors, multipart value helpers, and the
// client interfaces for the OpenAI REST API.
//
// # Overview
//
// Every endpoint is described by a Request: a small struct whose methods
// report the HTTP method, the path with identifiers substituted, the query and
// the body. Descriptors hold no connection state and do no I/O beyond the
// file-existence check performed for path-based file parameters. A concrete
// client that sends them is provided by the openaiclient package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/openai-client/pkg/openai"
//	  "github.com/fivetwenty-io/openai-client/pkg/openaiclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := openaiclient.New(ctx, &openai.Config{APIKey: "sk-..."})
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Embeddings().Create(ctx, &openai.CreateEmbeddingsRequest{
//	    Model: "text-embedding-3-small",
//	    Input: openai.Text("hello"),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = resp.Field("data.0.embedding")
//	}
//
// # Optional parameters
//
// Optional parameters are typed as Optional[T]. The zero value is left out of
// the request; a value wrapped with Some is always sent, even when it is "",
// 0 or false.
//
//	req := &openai.ListFilesRequest{Limit: openai.Some(50)} // ?limit=50
//
// # Files and data
//
// Multipart parameters accept a FileInput (a Part, or a local path checked with
// EnsureFile before any network activity) or a DataInput (a Part, a reader, a
// byte slice, a string or an integer, normalized with EnsureData).
//
// # Errors
//
// Client-side precondition failures are *ValidationError. Responses with a
// non-2xx status are returned together with a *RequestError that carries the
// decoded API error object. Helpers such as IsNotFound, IsUnauthorized and
// IsRateLimited branch on common cases.
package openai
