package proofcheck

import "context"

// Checker validates the content and metadata of a submission before a proof
// row is created. It never approves anything; every proof still waits for a
// manual review.
type Checker interface {
	Check(ctx context.Context, content string) error
}
