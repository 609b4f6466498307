// Package gmail provides a client for the subset of the Gmail API that
// mailsift uses.
//
// This package offers:
//   - Message search with pagination
//   - Full message retrieval with header helpers
//   - Recursive part-tree search for downloadable attachments
//   - Attachment download with base64url decoding
//
// Authentication:
// This package uses the unified Google OAuth token from the google package.
// Tokens are loaded from the file system (~/.cache/mailsift/).
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := gmail.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ids, err := client.Search(`has:attachment filename:pdf`, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg, err := client.GetMessage(ids[0])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	parts := gmail.FindMatchingParts(msg.Payload.Parts, []string{"application/pdf"})
package gmail
