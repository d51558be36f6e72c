package proofcheck

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

// Image Checker
type imageChecker struct{}

func newImageChecker(context.Context, map[string]any) (*imageChecker, error) {
	return &imageChecker{}, nil
}

func (imageChecker) Check(ctx context.Context, content string) error {
	u, err := url.ParseRequestURI(content)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid image url: %v", err)
		return errorx.New(errorx.BadRequest, "Invalid image url")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errorx.New(errorx.BadRequest, "Image url must be http or https")
	}

	return nil
}

// Link Checker
type linkChecker struct {
	RequiredHost string `mapstructure:"required_host"`
}

func newLinkChecker(ctx context.Context, metadata map[string]any) (*linkChecker, error) {
	link := linkChecker{}
	if err := mapstructure.Decode(metadata, &link); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	return &link, nil
}

func (c *linkChecker) Check(ctx context.Context, content string) error {
	u, err := url.ParseRequestURI(content)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid link: %v", err)
		return errorx.New(errorx.BadRequest, "Invalid link")
	}

	if c.RequiredHost != "" && !strings.HasSuffix(u.Host, c.RequiredHost) {
		return errorx.New(errorx.BadRequest, "Link must point to %s", c.RequiredHost)
	}

	return nil
}

// Text Checker
type textChecker struct {
	MinLength int `mapstructure:"min_length"`
}

func newTextChecker(ctx context.Context, metadata map[string]any) (*textChecker, error) {
	text := textChecker{}
	if err := mapstructure.Decode(metadata, &text); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	return &text, nil
}

func (c *textChecker) Check(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return errorx.New(errorx.BadRequest, "Not allow an empty submission")
	}

	if len(content) < c.MinLength {
		return errorx.New(errorx.BadRequest,
			"Submission must be at least %d characters", c.MinLength)
	}

	return nil
}

// QRScan Checker
type qrScanChecker struct {
	Code string `mapstructure:"code"`
}

func newQRScanChecker(ctx context.Context, metadata map[string]any) (*qrScanChecker, error) {
	qr := qrScanChecker{}
	if err := mapstructure.Decode(metadata, &qr); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	if qr.Code == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found check-in code")
	}

	return &qr, nil
}

func (c *qrScanChecker) Check(ctx context.Context, content string) error {
	if content != c.Code {
		return errorx.New(errorx.BadRequest, "Check-in code does not match")
	}

	return nil
}

// Attendance Checker
type attendanceChecker struct {
	EventDate string `mapstructure:"event_date"`
}

func newAttendanceChecker(ctx context.Context, metadata map[string]any) (*attendanceChecker, error) {
	attendance := attendanceChecker{}
	if err := mapstructure.Decode(metadata, &attendance); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	return &attendance, nil
}

func (c *attendanceChecker) Check(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return errorx.New(errorx.BadRequest, "Not allow an empty submission")
	}

	if c.EventDate != "" {
		eventDate, err := time.Parse("2006-01-02", c.EventDate)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Invalid event date in metadata: %v", err)
			return nil
		}

		if time.Now().Before(eventDate) {
			return errorx.New(errorx.Unavailable, "The event has not happened yet")
		}
	}

	return nil
}
