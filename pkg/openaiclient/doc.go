// Package openaiclient provides the primary entry point for constructing an
// OpenAI API client that implements the openai.Client interface.
//
// It layers configuration, HTTP transport and credentials on top of the request
// descriptors and interfaces defined in the openai package. Most applications
// should import openaiclient to build a client, then use the returned
// openai.Client to reach the per-area clients, for example Audio(), Files(),
// Batches(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/fivetwenty-io/openai-client/pkg/openai"
//	  "github.com/fivetwenty-io/openai-client/pkg/openaiclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := openaiclient.New(ctx, &openai.Config{
//	    APIKey:       os.Getenv("OPENAI_API_KEY"),
//	    Organization: "org-...", // optional
//	    Project:      "proj_...", // optional
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Files().List(ctx, &openai.ListFilesRequest{Limit: openai.Some(50)})
//	  if err != nil { log.Fatal(err) }
//	  for _, id := range resp.Field("data.#.id").Array() {
//	    log.Println(id.String())
//	  }
//	}
//
// # Base URL
//
// Config.BaseURL defaults to https://api.openai.com. A trailing slash is
// removed and "https://" is added when no scheme is given, so a plain-HTTP
// server must be passed with its scheme, e.g. "http://localhost:8080".
//
// # Retries
//
// Every call performs exactly one HTTP exchange. Operations such as batch
// cancel or upload complete are not idempotent at the server; callers that
// retry them own the consequences.
//
// # Helpers
//
// NewWithAPIKey and NewWithBaseURL wrap New with the corresponding configuration.
package openaiclient
