package proofcheck

import (
	"context"
	"fmt"

	"github.com/localboost/backend/internal/entity"
)

// Checker Factory
func NewChecker(
	ctx context.Context, t entity.ProofType, metadata map[string]any,
) (Checker, error) {
	var checker Checker
	var err error
	switch t {
	case entity.ProofImage:
		checker, err = newImageChecker(ctx, metadata)

	case entity.ProofLink:
		checker, err = newLinkChecker(ctx, metadata)

	case entity.ProofText:
		checker, err = newTextChecker(ctx, metadata)

	case entity.ProofQRScan:
		checker, err = newQRScanChecker(ctx, metadata)

	case entity.ProofAttendance:
		checker, err = newAttendanceChecker(ctx, metadata)

	default:
		return nil, fmt.Errorf("invalid proof type %s", t)
	}

	if err != nil {
		return nil, err
	}

	return checker, nil
}
